package ussd

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/metrics"
	"github.com/tmuriuki/cashlink/internal/models"
	"github.com/tmuriuki/cashlink/internal/services"
)

// Flow identifies one USSD sub-flow.
type Flow int

const (
	FlowMenu Flow = iota
	FlowBalance
	FlowSendMoney
	FlowAirtime
	FlowHistory
	FlowSettings
)

func (f Flow) String() string {
	switch f {
	case FlowBalance:
		return "balance"
	case FlowSendMoney:
		return "send_money"
	case FlowAirtime:
		return "airtime"
	case FlowHistory:
		return "history"
	case FlowSettings:
		return "settings"
	default:
		return "menu"
	}
}

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	pinRe   = regexp.MustCompile(`^[0-9]{4}$`)
)

const historyLimit = 5

// TransferAPI is the wallet-side surface the USSD flows drive.
type TransferAPI interface {
	Send(ctx context.Context, senderPhone, recipientPhone string, amount float64, pin string) (*models.TransferReceipt, error)
	BuyAirtime(ctx context.Context, phone string, amount float64, pin string) (*models.TransferRecordDB, error)
	History(ctx context.Context, phone string, limit int) ([]models.TransferRecordDB, error)
	Balance(ctx context.Context, phone string) (*models.WalletDB, error)
	VerifyPin(ctx context.Context, phone, pin string) error
}

// AgentLookup resolves agents for the settings flow.
type AgentLookup interface {
	FindByCode(ctx context.Context, code string) (*models.AgentDB, error)
}

// AuditLogger records USSD interactions, best effort.
type AuditLogger interface {
	LogEvent(ctx context.Context, userID, eventType, details string)
}

// Navigator reconstructs the session position from the accumulated input
// text on every hop and dispatches to the matching flow. It holds no
// per-session state: USSD carries none between hops, so any instance can
// serve any hop of a session.
type Navigator struct {
	transfers TransferAPI
	agents    AgentLookup
	audit     AuditLogger
	m         *metrics.Metrics
	codes     map[string]Flow
}

// NewNavigator creates a Navigator. Service codes other than the ones in
// codes fall back to the main menu; pass nil for the default code table.
// Metrics may be nil.
func NewNavigator(transfers TransferAPI, agents AgentLookup, audit AuditLogger, m *metrics.Metrics, codes map[string]Flow) *Navigator {
	if codes == nil {
		codes = map[string]Flow{
			"*483#":   FlowMenu,
			"*483*1#": FlowBalance,
			"*483*2#": FlowSendMoney,
			"*483*3#": FlowAirtime,
			"*483*4#": FlowHistory,
			"*483*5#": FlowSettings,
		}
	}
	return &Navigator{
		transfers: transfers,
		agents:    agents,
		audit:     audit,
		m:         m,
		codes:     codes,
	}
}

// Handle services one gateway callback. It is a pure function of the
// request: the same (serviceCode, text, phone) always yields the same
// response.
func (n *Navigator) Handle(ctx context.Context, req models.USSDRequest) Response {
	tokens := splitTokens(req.Text)
	flow := n.codes[req.ServiceCode]

	if flow == FlowMenu {
		if len(tokens) == 0 {
			n.observe(ctx, req, FlowMenu, Response{})
			return con("Welcome to CashLink\n1. Check balance\n2. Send money\n3. Buy airtime\n4. Transaction history\n5. Settings")
		}
		var ok bool
		flow, ok = menuChoice(tokens[0])
		if !ok {
			resp := end("Invalid choice. Dial again to restart.")
			n.observe(ctx, req, FlowMenu, resp)
			return resp
		}
		tokens = tokens[1:]
	}

	var resp Response
	switch flow {
	case FlowBalance:
		resp = n.balance(ctx, req.PhoneNumber, tokens)
	case FlowSendMoney:
		resp = n.sendMoney(ctx, req.PhoneNumber, tokens)
	case FlowAirtime:
		resp = n.airtime(ctx, req.PhoneNumber, tokens)
	case FlowHistory:
		resp = n.history(ctx, req.PhoneNumber, tokens)
	case FlowSettings:
		resp = n.settings(ctx, req.PhoneNumber, tokens)
	default:
		resp = end("Invalid input. Please try again.")
	}

	n.observe(ctx, req, flow, resp)
	return resp
}

func (n *Navigator) observe(ctx context.Context, req models.USSDRequest, flow Flow, resp Response) {
	result := "continue"
	if resp.End {
		result = "end"
	}
	if n.m != nil {
		n.m.USSDRequests.WithLabelValues(flow.String(), result).Inc()
	}
	if n.audit != nil {
		n.audit.LogEvent(ctx, req.PhoneNumber, "ussd_request", flow.String()+":"+result)
	}
	logger.Log.Infow("ussd request",
		"session_id", req.SessionID,
		"flow", flow.String(),
		"tokens", len(splitTokens(req.Text)),
		"result", result,
	)
}

func menuChoice(token string) (Flow, bool) {
	switch token {
	case "1":
		return FlowBalance, true
	case "2":
		return FlowSendMoney, true
	case "3":
		return FlowAirtime, true
	case "4":
		return FlowHistory, true
	case "5":
		return FlowSettings, true
	default:
		return FlowMenu, false
	}
}

// splitTokens parses the accumulated input text into ordered tokens.
// Empty text means the session has just been opened.
func splitTokens(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "*")
}

// failureMessage translates a domain error into short terminal prose.
// Internal detail never reaches the USSD channel.
func failureMessage(err error) Response {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return end("This service requires both parties to be registered. Please contact support.")
	case errors.Is(err, services.ErrInvalidCredentials):
		return end("Incorrect PIN. Transaction cancelled.")
	case errors.Is(err, services.ErrInsufficientBalance):
		return end("Insufficient balance for this transaction.")
	case errors.Is(err, services.ErrWalletNotFound):
		return end("No wallet is linked to this number.")
	default:
		return end("Service temporarily unavailable. Please try again later.")
	}
}
