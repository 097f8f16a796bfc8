package source

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/jhillyerd/enmime"

	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// IMAPConfig holds the connection settings for a live inbox.
type IMAPConfig struct {
	Server      string // host:port
	Username    string
	Password    string
	Mailbox     string // defaults to INBOX
	DialTimeout time.Duration
}

// IMAPSource fetches messages from a live IMAP mailbox over TLS.
type IMAPSource struct {
	cfg    IMAPConfig
	client *client.Client
	logger *slog.Logger
}

// NewIMAPSource connects and logs in to the configured IMAP server.
func NewIMAPSource(cfg IMAPConfig, logger *slog.Logger) (*IMAPSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Server == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("imap server, username, and password are required: %w", common.ErrMissingConfig)
	}
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 30 * time.Second
	}

	logger.Info("connecting to IMAP server", "server", cfg.Server)

	dialer := &net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", cfg.Server, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Server, err)
	}

	imapClient, err := client.New(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create IMAP client: %w", err)
	}

	if err := imapClient.Login(cfg.Username, cfg.Password); err != nil {
		_ = imapClient.Logout()
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	return &IMAPSource{cfg: cfg, client: imapClient, logger: logger}, nil
}

// Fetch returns up to limit of the most recent messages in the mailbox. A
// non-empty query narrows the fetch to messages matching it server-side.
func (s *IMAPSource) Fetch(ctx context.Context, limit int, query string) ([]model.Message, error) {
	mbox, err := s.client.Select(s.cfg.Mailbox, true)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", s.cfg.Mailbox, err)
	}
	if mbox.Messages == 0 {
		return nil, nil
	}

	if limit <= 0 || limit > MaxFetch {
		limit = MaxFetch
	}

	seqSet, err := s.sequenceSet(mbox, limit, query)
	if err != nil {
		return nil, err
	}
	if seqSet == nil {
		return nil, nil
	}

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid, section.FetchItem()}

	raw := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- s.client.Fetch(seqSet, items, raw)
	}()

	var messages []model.Message
	for msg := range raw {
		select {
		case <-ctx.Done():
			// Drain so the fetch goroutine can finish.
			continue
		default:
		}

		parsed, err := s.parseMessage(msg, section)
		if err != nil {
			s.logger.Warn("failed to parse message", "uid", msg.Uid, "error", err)
			continue
		}
		messages = append(messages, parsed)
	}

	if err := <-done; err != nil {
		return messages, fmt.Errorf("failed to fetch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// sequenceSet resolves which messages to fetch: a server-side text search
// when a query is given, otherwise the newest limit messages.
func (s *IMAPSource) sequenceSet(mbox *imap.MailboxStatus, limit int, query string) (*imap.SeqSet, error) {
	seqSet := new(imap.SeqSet)

	if query != "" {
		criteria := imap.NewSearchCriteria()
		criteria.Text = []string{query}
		ids, err := s.client.Search(criteria)
		if err != nil {
			return nil, fmt.Errorf("failed to search: %w", err)
		}
		if len(ids) == 0 {
			return nil, nil
		}
		if len(ids) > limit {
			ids = ids[len(ids)-limit:]
		}
		seqSet.AddNum(ids...)
		return seqSet, nil
	}

	from := uint32(1)
	if mbox.Messages > uint32(limit) { // #nosec G115
		from = mbox.Messages - uint32(limit) + 1 // #nosec G115
	}
	seqSet.AddRange(from, mbox.Messages)
	return seqSet, nil
}

func (s *IMAPSource) parseMessage(msg *imap.Message, section *imap.BodySectionName) (model.Message, error) {
	parsed := model.Message{
		ID: fmt.Sprintf("imap_%d", msg.Uid),
	}

	for _, flag := range msg.Flags {
		if flag == imap.SeenFlag {
			parsed.IsRead = true
		}
	}

	if env := msg.Envelope; env != nil {
		parsed.Subject = env.Subject
		parsed.Timestamp = env.Date
		if env.MessageId != "" {
			parsed.ID = env.MessageId
		}
		if len(env.From) > 0 {
			parsed.Sender = env.From[0].Address()
			parsed.SenderName = env.From[0].PersonalName
		}
	}

	body := msg.GetBody(section)
	if body == nil {
		return parsed, nil
	}

	envelope, err := enmime.ReadEnvelope(body)
	if err != nil {
		return parsed, fmt.Errorf("failed to read MIME envelope: %w", err)
	}

	parsed.Body = envelope.Text
	if parsed.Body == "" && envelope.HTML != "" {
		text, err := htmlToText(envelope.HTML)
		if err != nil {
			s.logger.Warn("failed to convert HTML body", "uid", msg.Uid, "error", err)
		} else {
			parsed.Body = text
		}
	}

	for _, att := range envelope.Attachments {
		parsed.Attachments = append(parsed.Attachments, model.Attachment{
			Name:     att.FileName,
			MimeType: att.ContentType,
			Size:     int64(len(att.Content)),
		})
	}
	parsed.HasAttachments = len(parsed.Attachments) > 0

	return parsed, nil
}

// Close logs out of the IMAP session.
func (s *IMAPSource) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Logout()
}
