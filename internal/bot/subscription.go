package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// checkSubscription пропускает подписанных на канал. Остальным — приглашение.
func (b *Bot) checkSubscription(ev event) bool {
	if b.isSubscribed(ev.userID) {
		return true
	}
	b.sendSubscribePrompt(ev)
	return false
}

// isSubscribed проверяет членство пользователя в канале.
// Канал не настроен или проверка не удалась — пропускаем (fail open).
func (b *Bot) isSubscribed(userID int64) bool {
	if b.cfg.ChannelID == "" {
		return true
	}

	cfg := tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{UserID: userID},
	}
	if strings.HasPrefix(b.cfg.ChannelID, "@") {
		cfg.SuperGroupUsername = b.cfg.ChannelID
	} else {
		id, err := strconv.ParseInt(b.cfg.ChannelID, 10, 64)
		if err != nil {
			b.log.Error().Str("channel_id", b.cfg.ChannelID).Msg("некорректный CHANNEL_ID")
			return true
		}
		cfg.ChatID = id
	}

	member, err := b.api.GetChatMember(cfg)
	if err != nil {
		b.log.Error().Err(err).Msg("не удалось проверить подписку")
		return true
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}

func (b *Bot) sendSubscribePrompt(ev event) {
	kb := subscribeKeyboard(b.cfg.ChannelUsername)
	b.sendOrEdit(ev, locText().Subscription.Required, &kb)
}
