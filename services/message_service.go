package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"message-system/models"
)

// MessageService 消息服务
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// InboxItem is one received message joined with the recipient's read state
// and the sender's directory record.
type InboxItem struct {
	ID               string      `json:"id"`
	SenderID         string      `json:"sender_id"`
	Subject          string      `json:"subject"`
	Content          string      `json:"content"`
	CreatedAt        time.Time   `json:"created_at"`
	RecipientEntryID string      `json:"recipient_entry_id"`
	Read             bool        `json:"read"`
	ReadAt           *time.Time  `json:"read_at"`
	Sender           models.User `json:"sender"`
}

// RecipientStatus is one recipient of a message with their read state.
type RecipientStatus struct {
	RecipientEntryID string     `json:"recipient_entry_id"`
	RecipientID      string     `json:"recipient_id"`
	RecipientName    string     `json:"recipient_name"`
	RecipientEmail   string     `json:"recipient_email"`
	Read             bool       `json:"read"`
	ReadAt           *time.Time `json:"read_at"`
}

// Send creates one message plus one recipient entry per distinct recipient
// in a single transaction. Duplicate recipient ids collapse to one entry;
// an unknown sender or recipient aborts the whole send.
func (s *MessageService) Send(senderID string, recipientIDs []string, subject, content string) (*models.Message, error) {
	distinct := dedupeIDs(recipientIDs)
	if len(distinct) == 0 {
		return nil, &ValidationError{Reason: "message must have at least one recipient"}
	}

	var message models.Message
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sender models.User
		if err := tx.First(&sender, "id = ?", senderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "sender", ID: senderID}
			}
			return err
		}

		// 校验所有收件人是否存在
		var recipients []models.User
		if err := tx.Where("id IN ?", distinct).Find(&recipients).Error; err != nil {
			return err
		}
		if len(recipients) != len(distinct) {
			return &NotFoundError{Resource: "recipient", ID: missingID(distinct, recipients)}
		}

		message = models.Message{
			ID:       uuid.New().String(),
			SenderID: senderID,
			Subject:  subject,
			Content:  content,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		for _, recipientID := range distinct {
			entry := models.RecipientEntry{
				ID:          uuid.New().String(),
				MessageID:   message.ID,
				RecipientID: recipientID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Get fetches one message by id.
func (s *MessageService) Get(id string) (*models.Message, error) {
	var message models.Message
	if err := s.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "message", ID: id}
		}
		return nil, err
	}
	return &message, nil
}

// Recipients lists every recipient of a message with their read state,
// in delivery order.
func (s *MessageService) Recipients(messageID string) ([]RecipientStatus, error) {
	if _, err := s.Get(messageID); err != nil {
		return nil, err
	}

	var entries []models.RecipientEntry
	err := s.db.
		Preload("Recipient").
		Where("message_id = ?", messageID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]RecipientStatus, 0, len(entries))
	for _, entry := range entries {
		statuses = append(statuses, RecipientStatus{
			RecipientEntryID: entry.ID,
			RecipientID:      entry.RecipientID,
			RecipientName:    entry.Recipient.Name,
			RecipientEmail:   entry.Recipient.Email,
			Read:             entry.IsRead,
			ReadAt:           entry.ReadAt,
		})
	}
	return statuses, nil
}

// MarkAsRead transitions one recipient entry to read. Marking an entry
// that is already read is a no-op and leaves read_at untouched. The
// conditional update guarantees a single timestamp write even under
// concurrent calls on the same entry.
func (s *MessageService) MarkAsRead(entryID string) (*models.RecipientEntry, error) {
	now := time.Now().UTC()
	res := s.db.Model(&models.RecipientEntry{}).
		Where("id = ? AND read_state = ?", entryID, false).
		Updates(map[string]interface{}{"read_state": true, "read_at": now})
	if res.Error != nil {
		return nil, res.Error
	}

	var entry models.RecipientEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "recipient entry", ID: entryID}
		}
		return nil, err
	}
	return &entry, nil
}

// ListSent returns all messages a user has sent, oldest first.
func (s *MessageService) ListSent(userID string) ([]models.Message, error) {
	if err := s.userExists(userID); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := s.db.
		Where("sender_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Inbox returns every message delivered to the user, read and unread.
func (s *MessageService) Inbox(userID string) ([]InboxItem, error) {
	return s.inbox(userID, false)
}

// UnreadInbox returns the unread subset of the user's inbox.
func (s *MessageService) UnreadInbox(userID string) ([]InboxItem, error) {
	return s.inbox(userID, true)
}

func (s *MessageService) inbox(userID string, unreadOnly bool) ([]InboxItem, error) {
	if err := s.userExists(userID); err != nil {
		return nil, err
	}

	q := s.db.
		Preload("Message.Sender").
		Select("recipient_entries.*").
		Joins("JOIN messages ON messages.id = recipient_entries.message_id").
		Where("recipient_entries.recipient_id = ?", userID).
		Order("messages.created_at ASC, messages.id ASC")
	if unreadOnly {
		q = q.Where("recipient_entries.read_state = ?", false)
	}

	var entries []models.RecipientEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}

	items := make([]InboxItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, InboxItem{
			ID:               entry.Message.ID,
			SenderID:         entry.Message.SenderID,
			Subject:          entry.Message.Subject,
			Content:          entry.Message.Content,
			CreatedAt:        entry.Message.CreatedAt,
			RecipientEntryID: entry.ID,
			Read:             entry.IsRead,
			ReadAt:           entry.ReadAt,
			Sender:           entry.Message.Sender,
		})
	}
	return items, nil
}

func (s *MessageService) userExists(id string) error {
	var user models.User
	if err := s.db.Select("id").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "user", ID: id}
		}
		return err
	}
	return nil
}

// dedupeIDs keeps the first occurrence of each id, preserving order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}

// missingID reports which requested id the existence query did not return.
func missingID(wanted []string, found []models.User) string {
	exists := make(map[string]struct{}, len(found))
	for _, u := range found {
		exists[u.ID] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := exists[id]; !ok {
			return id
		}
	}
	return ""
}
