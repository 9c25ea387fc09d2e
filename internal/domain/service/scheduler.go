package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

const deliveryTimeout = 15 * time.Second

// Slack error strings that mean the recipient can never receive a DM.
// Entries failing with one of these are dropped instead of retried.
var permanentDeliveryErrors = map[string]bool{
	"user_not_found":    true,
	"users_not_found":   true,
	"channel_not_found": true,
	"cannot_dm_bot":     true,
	"account_inactive":  true,
	"user_disabled":     true,
}

type scheduler struct {
	reminders   contract.ReminderStore
	slackClient contract.SlackClient
	storeMu     *sync.Mutex
	clk         clock.Clock
	cron        *cron.Cron
}

func newScheduler(reminders contract.ReminderStore, slackClient contract.SlackClient, storeMu *sync.Mutex, clk clock.Clock) *scheduler {
	return &scheduler{
		reminders:   reminders,
		slackClient: slackClient,
		storeMu:     storeMu,
		clk:         clk,
		cron:        cron.New(),
	}
}

// Start begins the once-a-minute delivery sweep. Call it only after the
// Slack client has been verified, a tick with a dead client would drop
// nothing but would log an error per entry every minute.
func (s *scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return fmt.Errorf("failed to schedule delivery sweep: %w", err)
	}
	s.cron.Start()
	log.Println("Reminder delivery sweep started (every minute)")
	return nil
}

// Stop halts the sweep and waits for an in-flight tick to finish.
func (s *scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("Reminder delivery sweep stopped")
}

// tick delivers every entry that is due and persists the survivors. The
// whole load+deliver+save sequence runs under the store mutex so a
// concurrent create cannot be lost between the load and the save.
func (s *scheduler) tick() {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	entries, err := s.reminders.LoadAll()
	if err != nil {
		log.Printf("ERROR: delivery sweep could not load reminders: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	now := s.clk.Now().UTC()
	kept := make([]entity.Reminder, 0, len(entries))
	delivered := 0

	for _, entry := range entries {
		if entry.DueAt.After(now) {
			kept = append(kept, entry)
			continue
		}

		if err := s.deliver(entry); err != nil {
			if permanentDeliveryErrors[err.Error()] {
				log.Printf("ERROR: dropping reminder for %s, recipient unreachable: %v", entry.RecipientID, err)
				continue
			}
			// Transient failure, keep the entry for the next sweep.
			log.Printf("ERROR: failed to deliver reminder to %s, will retry: %v", entry.RecipientID, err)
			kept = append(kept, entry)
			continue
		}
		delivered++
	}

	if delivered == 0 && len(kept) == len(entries) {
		return
	}

	if err := s.reminders.SaveAll(kept); err != nil {
		log.Printf("ERROR: delivery sweep could not save reminders: %v", err)
	}
}

func (s *scheduler) deliver(entry entity.Reminder) error {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	channel, _, _, err := s.slackClient.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{entry.RecipientID},
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Reminder from %s: %s", entry.AuthorName, entry.Message)
	if _, _, err := s.slackClient.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(text, false)); err != nil {
		return err
	}
	return nil
}
