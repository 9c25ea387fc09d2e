package service

import (
	"sync"

	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/jmhodges/clock"
)

type Instance struct {
	Reminder  *reminderService
	Scheduler *scheduler
	Ledger    *ledgerService
	Paycheck  *paycheckService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, reminders contract.ReminderStore, timezones contract.TimezoneStore, auth contract.AuthStore) *Instance {
	clk := clock.New()

	// One mutex guards every load+mutate+save sequence on the reminder store,
	// shared by the create path and the scheduler tick. Without it a create
	// landing between a tick's load and save would be silently overwritten.
	storeMu := &sync.Mutex{}

	return &Instance{
		Reminder:  newReminder(reminders, timezones, storeMu, clk),
		Scheduler: newScheduler(reminders, slackClient, storeMu, clk),
		Ledger:    newLedger(dm, auth, clk),
		Paycheck:  newPaycheck(dm, auth, clk),
	}
}
