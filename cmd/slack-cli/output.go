package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chrisguillory/slack-cli/pkg/envelope"
	"github.com/chrisguillory/slack-cli/pkg/format"
	"github.com/gocarina/gocsv"
)

const messageSeparator = "------------------------------------------------------------"

// renderEnvelope prints an API response. JSON mode dumps the raw
// envelope as-is. Otherwise a failed envelope surfaces its error field
// verbatim, and a successful one gets a human rendering for every
// payload key that happens to be present: the checks are independent,
// not exclusive dispatch, and absent keys are skipped silently.
func renderEnvelope(env *envelope.Envelope) error {
	if jsonOutput {
		return printRawJSON(env)
	}
	if err := env.Err(); err != nil {
		return err
	}

	if msgs, ok := env.HistoryMessages(); ok && len(msgs) > 0 {
		if csvOutput {
			if err := printMessagesCSV(msgs); err != nil {
				return err
			}
		} else {
			fmt.Printf("Found %d message(s):\n\n", len(msgs))
			printMessages(msgs)
		}
	}

	if matches, ok := env.SearchMatches(); ok && len(matches) > 0 {
		if csvOutput {
			if err := printMessagesCSV(matches); err != nil {
				return err
			}
		} else {
			fmt.Printf("Found %d match(es):\n\n", len(matches))
			printMessages(matches)
		}
	}

	if channels, ok := env.Channels(); ok && len(channels) > 0 {
		if csvOutput {
			if err := printChannelsCSV(channels); err != nil {
				return err
			}
		} else {
			printChannels(channels)
		}
	}

	if members, ok := env.Members(); ok && len(members) > 0 {
		printMembers(members)
	}

	if user, ok := env.UserInfo(); ok {
		printUser(user)
	}

	if channel, ok := env.ChannelInfo(); ok {
		printChannel(channel)
	}

	return nil
}

func printRawJSON(env *envelope.Envelope) error {
	data, err := env.JSON()
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	fmt.Println()
	return nil
}

func printMessages(msgs []envelope.Message) {
	for _, msg := range msgs {
		fmt.Println(format.Message(msg, nil))
		fmt.Println(messageSeparator)
	}
}

func printChannels(channels []envelope.Channel) {
	fmt.Printf("Found %d channel(s):\n\n", len(channels))
	for _, ch := range channels {
		marker := "\U0001F4E2"
		if ch.IsPrivate {
			marker = "\U0001F512"
		}
		fmt.Printf("%s #%s (%s) - %d members\n", marker, ch.Name, ch.ID, ch.NumMembers)
	}
}

func printMembers(members []envelope.User) {
	fmt.Printf("Found %d user(s):\n\n", len(members))
	for _, u := range members {
		if u.Deleted {
			continue
		}
		name := u.Profile.DisplayName
		if name == "" {
			name = u.RealName
		}
		if name == "" {
			name = u.Name
		}
		marker := ""
		if u.IsBot {
			marker = " [bot]"
		}
		fmt.Printf("%s (%s)%s\n", name, u.ID, marker)
	}
}

func printUser(u *envelope.User) {
	name := u.RealName
	if name == "" {
		name = u.Name
	}
	if name == "" {
		name = "unknown"
	}
	fmt.Printf("User: %s\n", name)
	fmt.Printf("  ID: %s\n", u.ID)
	fmt.Printf("  Email: %s\n", orNA(u.Profile.Email))
	fmt.Printf("  Title: %s\n", orNA(u.Profile.Title))
}

func printChannel(ch *envelope.Channel) {
	name := ch.Name
	if name == "" {
		name = "unnamed"
	}
	fmt.Printf("Channel: #%s\n", name)
	fmt.Printf("  ID: %s\n", ch.ID)
	fmt.Printf("  Topic: %s\n", orNA(ch.Topic.Value))
	fmt.Printf("  Purpose: %s\n", orNA(ch.Purpose.Value))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

type messageRow struct {
	TS       string `csv:"ts"`
	User     string `csv:"user"`
	ThreadTS string `csv:"thread_ts"`
	Text     string `csv:"text"`
}

func printMessagesCSV(msgs []envelope.Message) error {
	rows := make([]messageRow, 0, len(msgs))
	for _, msg := range msgs {
		user := msg.User
		if user == "" {
			user = msg.BotID
		}
		rows = append(rows, messageRow{
			TS:       msg.TS,
			User:     user,
			ThreadTS: msg.ThreadTS,
			Text:     strings.ReplaceAll(msg.Text, "\n", " "),
		})
	}
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return fmt.Errorf("formatting messages as CSV: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}

type channelRow struct {
	ID      string `csv:"id"`
	Name    string `csv:"name"`
	Private bool   `csv:"private"`
	Members int    `csv:"members"`
}

func printChannelsCSV(channels []envelope.Channel) error {
	rows := make([]channelRow, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, channelRow{
			ID:      ch.ID,
			Name:    ch.Name,
			Private: ch.IsPrivate,
			Members: ch.NumMembers,
		})
	}
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return fmt.Errorf("formatting channels as CSV: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}
