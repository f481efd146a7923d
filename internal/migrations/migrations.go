// Package migrations brings the schema up to date: gorm AutoMigrate for the tables, then
// the indexes gorm tags cannot express.
package migrations

import (
	"fmt"
	"log"

	"github.com/linskybing/form-platform/internal/config/db"
	"gorm.io/gorm"
)

type statement struct {
	name string
	sql  string
}

var statements = []statement{
	{
		// one assignment row per user and form
		name: "uniq_user_form_access_user",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS uniq_user_form_access_user
			ON user_form_access (form_id, user_id) WHERE user_id IS NOT NULL`,
	},
	{
		name: "uniq_user_form_access_role",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS uniq_user_form_access_role
			ON user_form_access (form_id, role_id) WHERE role_id IS NOT NULL`,
	},
	{
		// reminder job scan
		name: "idx_forms_pending_reminder",
		sql: `CREATE INDEX IF NOT EXISTS idx_forms_pending_reminder
			ON forms (submission_deadline) WHERE form_type = 'task' AND reminder_sent_at IS NULL`,
	},
	{
		name: "idx_form_responses_respondent",
		sql: `CREATE INDEX IF NOT EXISTS idx_form_responses_respondent
			ON form_responses (form_id, respondent_id, respondent_type)`,
	},
}

// Run migrates every model and applies the extra indexes. Statements are idempotent.
func Run(gdb *gorm.DB) error {
	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, s := range statements {
		if err := gdb.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("apply %s: %w", s.name, err)
		}
	}
	log.Printf("[Migrations] schema up to date (%d models, %d indexes)", len(db.Models()), len(statements))
	return nil
}
