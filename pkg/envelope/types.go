package envelope

// Message is a single message record as returned by the history, replies
// and search APIs. Read-only to this client.
type Message struct {
	User      string      `json:"user,omitempty"`
	BotID     string      `json:"bot_id,omitempty"`
	Username  string      `json:"username,omitempty"`
	TS        string      `json:"ts"`
	ThreadTS  string      `json:"thread_ts,omitempty"`
	SubType   string      `json:"subtype,omitempty"`
	Text      string      `json:"text"`
	Permalink string      `json:"permalink,omitempty"`
	Channel   *ChannelRef `json:"channel,omitempty"`
	Reactions []Reaction  `json:"reactions,omitempty"`
	Files     []File      `json:"files,omitempty"`
}

// ChannelRef is the embedded channel object search matches carry.
type ChannelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Reaction struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// File is an attachment record. MessageTS and MessageUser are synthetic:
// they are filled in during extraction with the owning message's identity
// and are not part of the API payload.
type File struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name,omitempty"`
	Size               int64  `json:"size"`
	Filetype           string `json:"filetype,omitempty"`
	URLPrivate         string `json:"url_private,omitempty"`
	URLPrivateDownload string `json:"url_private_download,omitempty"`
	Permalink          string `json:"permalink,omitempty"`

	MessageTS   string `json:"_message_ts,omitempty"`
	MessageUser string `json:"_message_user,omitempty"`
}

// DownloadURL prefers the direct-download URL over the generic private
// one, and is empty when the record carries neither.
func (f File) DownloadURL() string {
	if f.URLPrivateDownload != "" {
		return f.URLPrivateDownload
	}
	return f.URLPrivate
}

// Channel is a flat channel metadata record, passed through with no
// transformation beyond field selection.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	IsPrivate  bool   `json:"is_private,omitempty"`
	IsIM       bool   `json:"is_im,omitempty"`
	IsMpIM     bool   `json:"is_mpim,omitempty"`
	IsArchived bool   `json:"is_archived,omitempty"`
	NumMembers int    `json:"num_members,omitempty"`
	Topic      Topic  `json:"topic,omitempty"`
	Purpose    Topic  `json:"purpose,omitempty"`
}

type Topic struct {
	Value string `json:"value"`
}

// User is a flat user metadata record.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	RealName string  `json:"real_name,omitempty"`
	Deleted  bool    `json:"deleted,omitempty"`
	IsBot    bool    `json:"is_bot,omitempty"`
	Profile  Profile `json:"profile,omitempty"`
}

type Profile struct {
	DisplayName string `json:"display_name,omitempty"`
	RealName    string `json:"real_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Title       string `json:"title,omitempty"`
}
