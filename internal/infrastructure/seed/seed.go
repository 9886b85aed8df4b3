// Package seed populates a fresh database with demo users, FAQs and tickets.
// Seeding runs only when the users table is empty, so it is safe to call on
// every startup.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

//go:embed fixture.yaml
var fixtureData []byte

type fixture struct {
	Users   []userFixture   `yaml:"users"`
	FAQs    []faqFixture    `yaml:"faqs"`
	Tickets []ticketFixture `yaml:"tickets"`
}

type userFixture struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsAdmin  bool   `yaml:"isAdmin"`
}

type faqFixture struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
}

type ticketFixture struct {
	Code              string   `yaml:"code"`
	Subject           string   `yaml:"subject"`
	Description       string   `yaml:"description"`
	Category          string   `yaml:"category"`
	Priority          string   `yaml:"priority"`
	Status            string   `yaml:"status"`
	User              string   `yaml:"user"`
	Assignee          string   `yaml:"assignee"`
	Attachments       []string `yaml:"attachments"`
	CreatedMinutesAgo int      `yaml:"createdMinutesAgo"`
	UpdatedMinutesAgo int      `yaml:"updatedMinutesAgo"`
}

// Run seeds the database from the embedded fixture. Passwords are hashed
// through the same hasher the registration flow uses.
func Run(ctx context.Context, db *gorm.DB, hasher user.PasswordHasher) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		logger.Debug("seed skipped, users already present", "count", count)
		return nil
	}

	var fx fixture
	if err := yaml.Unmarshal(fixtureData, &fx); err != nil {
		return fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	now := time.Now()
	userIDs := make(map[string]uint, len(fx.Users))

	for _, u := range fx.Users {
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		model := models.UserModel{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			IsAdmin:      u.IsAdmin,
		}
		if err := db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		userIDs[u.Email] = model.ID
	}

	for _, f := range fx.FAQs {
		model := models.FAQModel{
			Question: f.Question,
			Answer:   f.Answer,
			Category: f.Category,
			IsActive: true,
		}
		if err := db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed faq: %w", err)
		}
	}

	for _, t := range fx.Tickets {
		userID, ok := userIDs[t.User]
		if !ok {
			return fmt.Errorf("seed ticket %s references unknown user %s", t.Code, t.User)
		}

		var assigneeID *uint
		if t.Assignee != "" {
			id, ok := userIDs[t.Assignee]
			if !ok {
				return fmt.Errorf("seed ticket %s references unknown assignee %s", t.Code, t.Assignee)
			}
			assigneeID = &id
		}

		attachments := t.Attachments
		if attachments == nil {
			attachments = []string{}
		}
		encoded, err := json.Marshal(attachments)
		if err != nil {
			return fmt.Errorf("failed to marshal seed attachments: %w", err)
		}

		model := models.TicketModel{
			Code:        t.Code,
			Subject:     t.Subject,
			Description: t.Description,
			Category:    t.Category,
			Priority:    t.Priority,
			Status:      t.Status,
			UserID:      userID,
			AssigneeID:  assigneeID,
			Attachments: datatypes.JSON(encoded),
			CreatedAt:   now.Add(-time.Duration(t.CreatedMinutesAgo) * time.Minute).UnixMilli(),
			UpdatedAt:   now.Add(-time.Duration(t.UpdatedMinutesAgo) * time.Minute).UnixMilli(),
		}
		if err := db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %s: %w", t.Code, err)
		}
	}

	logger.Info("database seeded",
		"users", len(fx.Users),
		"faqs", len(fx.FAQs),
		"tickets", len(fx.Tickets),
	)
	return nil
}
