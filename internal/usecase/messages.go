package usecase

import (
	"errors"
	"fmt"

	"github.com/iho/tipbot/internal/domain"
)

// BaseCurrency is the display ticker for the wallet's currency.
const BaseCurrency = "TAO"

func tipPublicMessage(sender, recipient *domain.Account) string {
	return fmt.Sprintf("%s tipped %s", sender.Handle(), recipient.Handle())
}

func tipRecipientMessage(sender, recipient *domain.Account, amount int64) string {
	return fmt.Sprintf("Hi %s, you just received %s %s from %s!",
		recipient.Handle(), domain.FormatTao(amount), BaseCurrency, sender.Handle())
}

func tipSenderMessage(sender *domain.Account, balanceLine string) string {
	msg := fmt.Sprintf("%s your tip is on its way.", sender.Handle())
	if balanceLine != "" {
		msg += "\n" + balanceLine
	}
	return msg
}

// WithdrawalMessage renders the receipt line shown to the withdrawing user.
func WithdrawalMessage(r *domain.WithdrawalReceipt) string {
	return fmt.Sprintf("You have withdrawn %s %s to %s\nTransaction: %s",
		domain.FormatTao(r.Amount), BaseCurrency, r.Address, r.ExplorerURL)
}

// FailureMessage converts a flow error into the text shown to the user who
// issued the command. Recipient is nil for withdrawal and balance flows.
func FailureMessage(err error, actor, recipient *domain.Account, amount int64) string {
	switch {
	case errors.Is(err, domain.ErrAccountBusy):
		return fmt.Sprintf("%s you already have a transaction in progress, try again in a moment.", actor.Handle())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fmt.Sprintf("Sorry %s, you don't have enough confirmed %s for that.", actor.Handle(), BaseCurrency)
	case errors.Is(err, domain.ErrMoveFailed) && recipient != nil:
		return fmt.Sprintf("Oops, could not send %s %s from %s to %s.",
			domain.FormatTao(amount), BaseCurrency, actor.Handle(), recipient.Handle())
	case errors.Is(err, domain.ErrWalletUnlockFailed):
		return "An error prevents withdrawing: could not unlock the wallet."
	case errors.Is(err, domain.ErrSendFailed):
		return "An error prevents withdrawing."
	case errors.Is(err, domain.ErrBalanceUnavailable):
		return fmt.Sprintf("Could not check the balance of %s right now.", actor.Handle())
	case errors.Is(err, domain.ErrInvalidAmount):
		return "That amount doesn't look right."
	case errors.Is(err, domain.ErrSameAccount):
		return fmt.Sprintf("%s tipping yourself gets you nowhere.", actor.Handle())
	default:
		return "Something went wrong, the transaction was not completed."
	}
}
