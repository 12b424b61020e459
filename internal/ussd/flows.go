package ussd

import (
	"context"
	"strconv"
	"strings"
)

// balance asks for the PIN, then reads the primary wallet.
func (n *Navigator) balance(ctx context.Context, phone string, tokens []string) Response {
	pin, extra := consumePin(tokens)
	switch {
	case extra:
		return end("Invalid input. Please try again.")
	case pin == "":
		if len(tokens) == 0 {
			return con("Enter your 4-digit PIN:")
		}
		return con("Invalid PIN. Enter your 4-digit PIN:")
	default:
		if err := n.transfers.VerifyPin(ctx, phone, pin); err != nil {
			return failureMessage(err)
		}
		wallet, err := n.transfers.Balance(ctx, phone)
		if err != nil {
			return failureMessage(err)
		}
		return end("Your balance is %s %.2f", wallet.Currency, wallet.Balance)
	}
}

// airtime asks for an amount, then the PIN, then purchases.
func (n *Navigator) airtime(ctx context.Context, phone string, tokens []string) Response {
	var amount float64
	var pin string

	const (
		stepAmount = iota
		stepPin
		stepDone
	)
	step := stepAmount
	advanced := true
	for _, tok := range tokens {
		advanced = false
		switch step {
		case stepAmount:
			if a, err := strconv.ParseFloat(tok, 64); err == nil && a >= 1.00 {
				amount = a
				step = stepPin
				advanced = true
			}
		case stepPin:
			if pinRe.MatchString(tok) {
				pin = tok
				step = stepDone
				advanced = true
			}
		case stepDone:
			return end("Invalid input. Please try again.")
		}
	}

	switch step {
	case stepAmount:
		if len(tokens) == 0 {
			return con("Enter airtime amount:")
		}
		return con("Invalid amount. Enter airtime amount (minimum 1.00):")
	case stepPin:
		if advanced {
			return con("Buy airtime worth %.2f\nEnter your 4-digit PIN to confirm:", amount)
		}
		return con("Invalid PIN. Enter your 4-digit PIN:")
	case stepDone:
		rec, err := n.transfers.BuyAirtime(ctx, phone, amount, pin)
		if err != nil {
			return failureMessage(err)
		}
		return end("Airtime purchase of %.2f successful. Ref %s", rec.Amount, rec.Reference)
	default:
		return end("Invalid input. Please try again.")
	}
}

// history asks for the PIN, then lists the newest transfers.
func (n *Navigator) history(ctx context.Context, phone string, tokens []string) Response {
	pin, extra := consumePin(tokens)
	switch {
	case extra:
		return end("Invalid input. Please try again.")
	case pin == "":
		if len(tokens) == 0 {
			return con("Enter your 4-digit PIN:")
		}
		return con("Invalid PIN. Enter your 4-digit PIN:")
	default:
		if err := n.transfers.VerifyPin(ctx, phone, pin); err != nil {
			return failureMessage(err)
		}
		recs, err := n.transfers.History(ctx, phone, historyLimit)
		if err != nil {
			return failureMessage(err)
		}
		if len(recs) == 0 {
			return end("No recent transactions.")
		}

		var b strings.Builder
		b.WriteString("Recent transactions:")
		for _, rec := range recs {
			b.WriteString("\n")
			switch rec.Type {
			case "transfer_in":
				b.WriteString("IN ")
			case "airtime":
				b.WriteString("AIR ")
			default:
				b.WriteString("OUT ")
			}
			b.WriteString(strconv.FormatFloat(rec.Amount, 'f', 2, 64))
			b.WriteString(" ")
			b.WriteString(rec.CounterpartyPhone)
		}
		return end("%s", b.String())
	}
}

// settings is a two-level submenu: language preference and agent lookup.
func (n *Navigator) settings(ctx context.Context, phone string, tokens []string) Response {
	switch len(tokens) {
	case 0:
		return con("Settings\n1. Language\n2. Agent information")
	case 1:
		switch tokens[0] {
		case "1":
			return con("Choose language\n1. English\n2. Twi")
		case "2":
			return con("Enter agent code:")
		default:
			return end("Invalid choice. Dial again to restart.")
		}
	case 2:
		switch tokens[0] {
		case "1":
			if tokens[1] != "1" && tokens[1] != "2" {
				return end("Invalid choice. Dial again to restart.")
			}
			return end("Language preference updated.")
		case "2":
			agent, err := n.agents.FindByCode(ctx, tokens[1])
			if err != nil {
				return end("No agent found with that code.")
			}
			return end("Agent %s\n%s, %s\nStatus: %s", agent.Code, agent.Address, agent.City, agent.Status)
		default:
			return end("Invalid choice. Dial again to restart.")
		}
	default:
		return end("Invalid input. Please try again.")
	}
}

// consumePin walks the tokens of a single-PIN flow. It returns the PIN
// once a well-formed one appears and whether tokens continue past it.
func consumePin(tokens []string) (pin string, extra bool) {
	for _, tok := range tokens {
		if pin != "" {
			return pin, true
		}
		if pinRe.MatchString(tok) {
			pin = tok
		}
	}
	return pin, false
}
