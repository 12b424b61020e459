package ussd

import (
	"context"
	"strconv"
)

// sendStep is the position inside the send-money flow. The step is never
// stored: it is re-derived by walking the accumulated tokens on every hop.
type sendStep int

const (
	sendStepRecipient sendStep = iota
	sendStepAmount
	sendStepPin
	sendStepDone
)

// sendMoney drives the four-step send flow. A token that fails validation
// does not advance the step, so the re-prompt naturally consumes the
// user's retry on the next hop. Every reachable step is enumerated in the
// final switch; input past completion terminates the session.
func (n *Navigator) sendMoney(ctx context.Context, phone string, tokens []string) Response {
	var recipient, pin string
	var amount float64

	step := sendStepRecipient
	// advanced reports whether the newest token moved the flow forward,
	// which decides between a fresh prompt and a re-prompt.
	advanced := true
	for _, tok := range tokens {
		advanced = false
		switch step {
		case sendStepRecipient:
			if phoneRe.MatchString(tok) {
				recipient = tok
				step = sendStepAmount
				advanced = true
			}
		case sendStepAmount:
			if a, err := strconv.ParseFloat(tok, 64); err == nil && a >= 1.00 {
				amount = a
				step = sendStepPin
				advanced = true
			}
		case sendStepPin:
			if pinRe.MatchString(tok) {
				pin = tok
				step = sendStepDone
				advanced = true
			}
		case sendStepDone:
			return end("Invalid input. Please try again.")
		}
	}

	switch step {
	case sendStepRecipient:
		if len(tokens) == 0 {
			return con("Enter recipient phone number:")
		}
		return con("Invalid phone number. Enter recipient phone number:")
	case sendStepAmount:
		if advanced {
			return con("Enter amount to send:")
		}
		return con("Invalid amount. Enter amount to send (minimum 1.00):")
	case sendStepPin:
		if advanced {
			return con("Send %.2f to %s\nEnter your 4-digit PIN to confirm:", amount, recipient)
		}
		return con("Invalid PIN. Enter your 4-digit PIN:")
	case sendStepDone:
		receipt, err := n.transfers.Send(ctx, phone, recipient, amount, pin)
		if err != nil {
			return failureMessage(err)
		}
		return end("Sent %.2f to %s. Fee %.2f. New balance %.2f. Ref %s",
			receipt.Amount, receipt.RecipientPhone, receipt.Fee, receipt.NewBalance, receipt.Reference)
	default:
		return end("Invalid input. Please try again.")
	}
}
