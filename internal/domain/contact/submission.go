package contact

import (
	"fmt"

	"portfolio-cms/internal/domain/core"

	"gorm.io/gorm"
)

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
	StatusClosed  Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusClosed:
		return true
	}
	return false
}

func (s Status) Display() string {
	switch s {
	case StatusNew:
		return "新訊息"
	case StatusRead:
		return "已讀"
	case StatusReplied:
		return "已回覆"
	case StatusClosed:
		return "已關閉"
	}
	return string(s)
}

// Submission is one message received through the public contact form.
// Only Status and AdminNotes change after creation.
type Submission struct {
	core.Model
	Name       string  `gorm:"size:100;not null" json:"name"`
	Email      string  `gorm:"not null" json:"email"`
	Phone      string  `gorm:"size:20" json:"phone"`
	Subject    string  `gorm:"size:200;not null" json:"subject"`
	Message    string  `gorm:"not null" json:"message"`
	Status     Status  `gorm:"type:varchar(10);not null;default:'new';index" json:"status"`
	AdminNotes string  `json:"admin_notes"`
	IPAddress  *string `gorm:"size:45" json:"ip_address"`
	UserAgent  string  `json:"user_agent"`
}

func (Submission) TableName() string { return "contact_forms" }

const SubmissionOrder = "created_at DESC"

// Action is a status transition the admin can apply to submissions.
type Action string

const (
	ActionMarkRead    Action = "mark-read"
	ActionMarkReplied Action = "mark-replied"
	ActionClose       Action = "close"
)

// transitions maps each action to the statuses it accepts and the status it
// produces. Submissions in any other status are left alone.
var transitions = map[Action]struct {
	from []Status
	to   Status
}{
	ActionMarkRead:    {from: []Status{StatusNew}, to: StatusRead},
	ActionMarkReplied: {from: []Status{StatusNew, StatusRead}, to: StatusReplied},
	ActionClose:       {from: []Status{StatusRead, StatusReplied}, to: StatusClosed},
}

func (a Action) Valid() bool {
	_, ok := transitions[a]
	return ok
}

// ApplyBulk runs action a over the submissions in ids in a single UPDATE and
// returns how many rows changed status.
func ApplyBulk(db *gorm.DB, a Action, ids []string) (int64, error) {
	t, ok := transitions[a]
	if !ok {
		return 0, fmt.Errorf("action %q: %w", a, core.ErrValidation)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.Model(&Submission{}).
		Where("id IN ? AND status IN ?", ids, t.from).
		Update("status", t.to)
	if res.Error != nil {
		return 0, fmt.Errorf("apply %s: %w", a, res.Error)
	}
	return res.RowsAffected, nil
}
