package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form         FormRepo
	Access       AccessRepo
	Response     ResponseRepo
	User         UserRepo
	Notification NotificationRepo
	Audit        AuditRepo

	db       *gorm.DB
	txRunner TxRunner
}

// TxRunner runs fn inside a unit of work. Stores other than gorm supply their own.
type TxRunner func(fn func(*Repos) error) error

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:         NewFormRepo(db),
		Access:       NewAccessRepo(db),
		Response:     NewResponseRepo(db),
		User:         NewUserRepo(db),
		Notification: NewNotificationRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

// SetTxRunner overrides how ExecTx opens a unit of work.
func (r *Repos) SetTxRunner(run TxRunner) {
	r.txRunner = run
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:         r.Form.WithTx(tx),
		Access:       r.Access.WithTx(tx),
		Response:     r.Response.WithTx(tx),
		User:         r.User.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn in a database transaction; any returned error rolls back every write
// made through the repos passed to fn.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.txRunner != nil {
		return r.txRunner(fn)
	}
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
