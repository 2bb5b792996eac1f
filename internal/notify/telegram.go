package notify

import (
	"fmt"
	"log"

	tele "gopkg.in/telebot.v3"

	"github.com/Dmast1/bookingart-api/internal/config"
	"github.com/Dmast1/bookingart-api/internal/models"
)

// Notifier pushes Telegram messages to providers that linked a chat.
// Best-effort only: a nil *Notifier or a send failure never surfaces to the
// request that triggered it.
type Notifier struct {
	bot *tele.Bot
}

func New(cfg *config.Config) *Notifier {
	if cfg.TelegramToken == "" {
		return nil
	}

	bot, err := tele.NewBot(tele.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Println("telegram disabled:", err)
		return nil
	}

	return &Notifier{bot: bot}
}

// BookingRequested tells the provider about a fresh booking request.
func (n *Notifier) BookingRequested(providerUser *models.User, br *models.BookingRequest) {
	if n == nil || providerUser.TelegramChatID == 0 {
		return
	}

	text := fmt.Sprintf(
		"Cerere nouă de rezervare pentru %s de la %s.",
		br.EventDate.Format("2006-01-02"),
		br.Client.Name,
	)

	go func() {
		if _, err := n.bot.Send(tele.ChatID(providerUser.TelegramChatID), text); err != nil {
			log.Println("telegram send error:", err)
		}
	}()
}

// BookingAnswered tells the client the provider accepted or declined.
func (n *Notifier) BookingAnswered(client *models.User, br *models.BookingRequest) {
	if n == nil || client.TelegramChatID == 0 {
		return
	}

	verb := "acceptată"
	if br.Status == "declined" {
		verb = "refuzată"
	}
	text := fmt.Sprintf(
		"Cererea ta de rezervare pentru %s a fost %s.",
		br.EventDate.Format("2006-01-02"),
		verb,
	)

	go func() {
		if _, err := n.bot.Send(tele.ChatID(client.TelegramChatID), text); err != nil {
			log.Println("telegram send error:", err)
		}
	}()
}
