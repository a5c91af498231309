package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/chrisguillory/slack-cli/pkg/envelope"
)

// HistoryParams select a slice of channel history.
type HistoryParams struct {
	Channel            string
	Limit              int
	Cursor             string
	Latest             string
	Oldest             string
	Inclusive          bool
	IncludeAllMetadata bool
}

// GetChannelHistory fetches messages from a channel or DM
// (conversations.history).
func (c *Client) GetChannelHistory(ctx context.Context, p HistoryParams) *envelope.Envelope {
	v := url.Values{}
	v.Set("channel", p.Channel)
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		v.Set("cursor", p.Cursor)
	}
	if p.Latest != "" {
		v.Set("latest", p.Latest)
	}
	if p.Oldest != "" {
		v.Set("oldest", p.Oldest)
	}
	if p.Inclusive {
		v.Set("inclusive", "true")
	}
	if p.IncludeAllMetadata {
		v.Set("include_all_metadata", "true")
	}
	return c.Call(ctx, "conversations.history", v, nil)
}

// RepliesParams select a thread.
type RepliesParams struct {
	Channel  string
	ThreadTS string
	Limit    int
	Cursor   string
}

// GetThreadReplies fetches the replies of a thread, parent included
// (conversations.replies).
func (c *Client) GetThreadReplies(ctx context.Context, p RepliesParams) *envelope.Envelope {
	v := url.Values{}
	v.Set("channel", p.Channel)
	v.Set("ts", p.ThreadTS)
	v.Set("inclusive", "true")
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		v.Set("cursor", p.Cursor)
	}
	return c.Call(ctx, "conversations.replies", v, nil)
}

// SearchMessages runs a message search (search.messages), newest first.
// Requires a user token; bot tokens cannot search.
func (c *Client) SearchMessages(ctx context.Context, query string, count, page int) *envelope.Envelope {
	v := url.Values{}
	v.Set("query", query)
	v.Set("count", strconv.Itoa(count))
	v.Set("page", strconv.Itoa(page))
	v.Set("sort", "timestamp")
	v.Set("sort_dir", "desc")
	return c.Call(ctx, "search.messages", v, nil)
}

// ChannelsParams select a page of the channel directory.
type ChannelsParams struct {
	Types           string
	Limit           int
	Cursor          string
	IncludeArchived bool
}

// ListChannels lists channels the token can see (conversations.list).
func (c *Client) ListChannels(ctx context.Context, p ChannelsParams) *envelope.Envelope {
	types := p.Types
	if types == "" {
		types = "public_channel,private_channel"
	}
	v := url.Values{}
	v.Set("types", types)
	v.Set("exclude_archived", strconv.FormatBool(!p.IncludeArchived))
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		v.Set("cursor", p.Cursor)
	}
	return c.Call(ctx, "conversations.list", v, nil)
}

// AddReaction adds an emoji reaction to a message (reactions.add).
// Surrounding colons on the emoji name are stripped.
func (c *Client) AddReaction(ctx context.Context, channel, timestamp, emoji string) *envelope.Envelope {
	body := map[string]any{
		"channel":   channel,
		"timestamp": timestamp,
		"name":      strings.Trim(emoji, ":"),
	}
	return c.Call(ctx, "reactions.add", nil, body)
}

// PostMessage posts to a channel, or to a thread when threadTS is set
// (chat.postMessage).
func (c *Client) PostMessage(ctx context.Context, channel, text, threadTS string, replyBroadcast bool) *envelope.Envelope {
	body := map[string]any{
		"channel": channel,
		"text":    text,
	}
	if threadTS != "" {
		body["thread_ts"] = threadTS
		body["reply_broadcast"] = replyBroadcast
	}
	return c.Call(ctx, "chat.postMessage", nil, body)
}

// GetUserInfo fetches a single user record (users.info).
func (c *Client) GetUserInfo(ctx context.Context, userID string) *envelope.Envelope {
	v := url.Values{}
	v.Set("user", userID)
	return c.Call(ctx, "users.info", v, nil)
}

// GetUsersList fetches a page of the workspace user directory (users.list).
func (c *Client) GetUsersList(ctx context.Context, limit int, cursor string) *envelope.Envelope {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	return c.Call(ctx, "users.list", v, nil)
}

// GetChannelInfo fetches a single channel record (conversations.info).
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) *envelope.Envelope {
	v := url.Values{}
	v.Set("channel", channelID)
	return c.Call(ctx, "conversations.info", v, nil)
}
