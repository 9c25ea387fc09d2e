package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	slackcmd "github.com/assistbot/slack-assistant-bot/internal/slack"
	"github.com/shopspring/decimal"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	reminderService contract.ReminderService
	ledgerService   contract.LedgerService
	paycheckService contract.PaycheckService
	signingSecret   string
}

func New(reminderService contract.ReminderService, ledgerService contract.LedgerService, paycheckService contract.PaycheckService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		reminderService: reminderService,
		ledgerService:   ledgerService,
		paycheckService: paycheckService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdRemind:
		return h.handleRemind(cmd, slashCmd)
	case slackcmd.CmdTimezone:
		return h.handleTimezone(cmd, slashCmd)
	case slackcmd.CmdAdd:
		return h.handleAddTransaction(cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleListTransactions(slashCmd)
	case slackcmd.CmdSummary:
		return h.handleSummary(slashCmd)
	case slackcmd.CmdSearch:
		return h.handleSearch(cmd, slashCmd)
	case slackcmd.CmdEdit:
		return h.handleEditTransaction(cmd, slashCmd)
	case slackcmd.CmdDelete:
		return h.handleDeleteTransaction(cmd, slashCmd)
	case slackcmd.CmdSetJob:
		return h.handleSetJob(cmd, slashCmd)
	case slackcmd.CmdEstimate:
		return h.handleEstimate(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// parseMention extracts the user ID from a Slack mention token,
// either <@U12345> or <@U12345|display-name>.
func parseMention(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "<@") || !strings.HasSuffix(arg, ">") {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	if idx := strings.Index(inner, "|"); idx >= 0 {
		inner = inner[:idx]
	}
	if inner == "" {
		return "", false
	}
	return inner, true
}

// parseDateTime splits "YYYY-MM-DD" and "HH:MM" into integer fields
// without range checks, the reminder service validates the calendar.
func parseDateTime(dateArg, timeArg string) (year, month, day, hour, minute int, err error) {
	dateParts := strings.Split(dateArg, "-")
	timeParts := strings.Split(timeArg, ":")
	if len(dateParts) != 3 || len(timeParts) != 2 {
		return 0, 0, 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD HH:MM, got %s %s", dateArg, timeArg)
	}

	fields := []*int{&year, &month, &day, &hour, &minute}
	for i, raw := range append(dateParts, timeParts...) {
		value, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, 0, 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD HH:MM, got %s %s", dateArg, timeArg)
		}
		*fields[i] = value
	}
	return year, month, day, hour, minute, nil
}

func (h *SlackHandler) handleRemind(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	usage := "Use: `/assistant remind @user [@user2 @user3] YYYY-MM-DD HH:MM message`"

	var targets []string
	rest := cmd.Args
	for len(rest) > 0 {
		userID, ok := parseMention(rest[0])
		if !ok {
			break
		}
		targets = append(targets, userID)
		rest = rest[1:]
	}

	if len(targets) == 0 || len(rest) < 3 {
		return h.createErrorResponse(usage)
	}

	year, month, day, hour, minute, err := parseDateTime(rest[0], rest[1])
	if err != nil {
		return h.createErrorResponse(usage)
	}

	message := strings.Join(rest[2:], " ")

	dueAt, err := h.reminderService.CreateReminder(slashCmd.UserID, slashCmd.UserName, message,
		year, month, day, hour, minute, targets)
	if err != nil {
		return h.domainErrorResponse(err)
	}

	mentions := make([]string, len(targets))
	for i, target := range targets {
		mentions[i] = fmt.Sprintf("<@%s>", target)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Reminder for %s scheduled at %s",
			strings.Join(mentions, ", "), dueAt.Format("2006-01-02 15:04 MST")),
	}
}

func (h *SlackHandler) handleTimezone(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Use: `/assistant timezone America/New_York`")
	}

	if err := h.reminderService.SetTimezone(slashCmd.UserID, cmd.Args[0]); err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Timezone set to %s", cmd.Args[0]),
	}
}

func (h *SlackHandler) handleAddTransaction(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/assistant add income|expense amount category [description]`")
	}

	amount, err := decimal.NewFromString(cmd.Args[1])
	if err != nil {
		return h.domainErrorResponse(domain.ErrInvalidAmount)
	}

	transaction := &entity.Transaction{
		Type:       cmd.Args[0],
		Amount:     amount,
		Category:   cmd.Args[2],
		AuthorID:   slashCmd.UserID,
		AuthorName: slashCmd.UserName,
	}
	if len(cmd.Args) > 3 {
		transaction.Description = strings.Join(cmd.Args[3:], " ")
	}

	if err := h.ledgerService.AddTransaction(slashCmd.UserID, transaction); err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Recorded %s of %s in %s (#%d)", transaction.Type, transaction.Amount.StringFixed(2), transaction.Category, transaction.ID),
	}
}

func (h *SlackHandler) handleListTransactions(slashCmd *slack.SlashCommand) *slack.Msg {
	transactions, err := h.ledgerService.ListRecent(slashCmd.UserID)
	if err != nil {
		return h.domainErrorResponse(err)
	}

	if len(transactions) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No transactions recorded yet. Use `/assistant add` to record one.",
		}
	}

	var out strings.Builder
	out.WriteString("*Recent transactions:*\n")
	for _, transaction := range transactions {
		out.WriteString(formatTransaction(transaction))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         out.String(),
	}
}

func (h *SlackHandler) handleSummary(slashCmd *slack.SlashCommand) *slack.Msg {
	summary, err := h.ledgerService.Summary(slashCmd.UserID)
	if err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*Budget summary:*\nIncome: %s\nExpenses: %s\nBalance: %s",
			summary.Income.StringFixed(2), summary.Expenses.StringFixed(2), summary.Balance.StringFixed(2)),
	}
}

func (h *SlackHandler) handleSearch(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/assistant search keyword`")
	}

	transactions, err := h.ledgerService.Search(slashCmd.UserID, strings.Join(cmd.Args, " "))
	if err != nil {
		return h.domainErrorResponse(err)
	}

	if len(transactions) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No transactions matched.",
		}
	}

	var out strings.Builder
	out.WriteString("*Matching transactions:*\n")
	for _, transaction := range transactions {
		out.WriteString(formatTransaction(transaction))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         out.String(),
	}
}

func (h *SlackHandler) handleEditTransaction(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/assistant edit id field value`")
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("Transaction id must be a number")
	}

	value := strings.Join(cmd.Args[2:], " ")
	if err := h.ledgerService.EditTransaction(slashCmd.UserID, id, cmd.Args[1], value); err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Transaction #%d updated", id),
	}
}

func (h *SlackHandler) handleDeleteTransaction(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Use: `/assistant delete id`")
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("Transaction id must be a number")
	}

	if err := h.ledgerService.DeleteTransaction(slashCmd.UserID, id); err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Transaction #%d deleted", id),
	}
}

func (h *SlackHandler) handleSetJob(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/assistant setjob name hourly_wage`")
	}

	wage, err := decimal.NewFromString(cmd.Args[len(cmd.Args)-1])
	if err != nil {
		return h.domainErrorResponse(domain.ErrInvalidAmount)
	}
	jobName := strings.Join(cmd.Args[:len(cmd.Args)-1], " ")

	if err := h.paycheckService.SetJob(slashCmd.UserID, jobName, wage); err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Job saved: %s at %s/hour", jobName, wage.StringFixed(2)),
	}
}

func (h *SlackHandler) handleEstimate(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/assistant estimate [@user] hours`")
	}

	targetID := slashCmd.UserID
	rest := cmd.Args
	if userID, ok := parseMention(rest[0]); ok {
		targetID = userID
		rest = rest[1:]
	}

	if len(rest) != 1 {
		return h.createErrorResponse("Use: `/assistant estimate [@user] hours`")
	}

	hours, err := decimal.NewFromString(rest[0])
	if err != nil {
		return h.domainErrorResponse(domain.ErrInvalidAmount)
	}

	estimate, err := h.paycheckService.Estimate(slashCmd.UserID, targetID, hours)
	if err != nil {
		return h.domainErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*Paycheck estimate for %s:*\n%s hours at %s/hour\nGross: %s\nDeductions: %s\nNet: %s",
			estimate.JobName, estimate.Hours.String(), estimate.HourlyWage.StringFixed(2),
			estimate.Gross.StringFixed(2), estimate.Deductions.StringFixed(2), estimate.Net.StringFixed(2)),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func formatTransaction(transaction *entity.Transaction) string {
	line := fmt.Sprintf("#%d %s %s %s [%s]", transaction.ID, transaction.CreatedAt.Format("2006-01-02"),
		transaction.Type, transaction.Amount.StringFixed(2), transaction.Category)
	if transaction.Description != "" {
		line += " " + transaction.Description
	}
	return line + "\n"
}

func (h *SlackHandler) domainErrorResponse(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNoTimezoneSet):
		return h.createErrorResponse("Set your timezone first: `/assistant timezone America/New_York`")
	case errors.Is(err, domain.ErrUnknownTimezone):
		return h.createErrorResponse("Unknown timezone. Use an IANA name like `America/New_York`")
	case errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse("That date and time does not exist in your timezone")
	case errors.Is(err, domain.ErrTimeInPast):
		return h.createErrorResponse("The reminder time must be in the future")
	case errors.Is(err, domain.ErrBadTargets):
		return h.createErrorResponse("Mention between 1 and 3 users to remind")
	case errors.Is(err, domain.ErrNotAuthorized):
		return h.createErrorResponse("You are not authorized to use this command")
	case errors.Is(err, domain.ErrInvalidAmount):
		return h.createErrorResponse("Amount must be a positive number")
	case errors.Is(err, domain.ErrUnknownTransactionType):
		return h.createErrorResponse("Transaction type must be `income` or `expense`")
	case errors.Is(err, domain.ErrUnknownField):
		return h.createErrorResponse("Editable fields are amount, category, description and type")
	case errors.Is(err, domain.ErrNotFound):
		return h.createErrorResponse("No transaction with that id")
	case errors.Is(err, domain.ErrNoJobSet):
		return h.createErrorResponse("No job saved for that user. Use `/assistant setjob` first")
	default:
		return h.createErrorResponse(fmt.Sprintf("Something went wrong: %v", err))
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
