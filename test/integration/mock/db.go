package mock

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estateshare/backend/internal/infra/db"
)

var once sync.Once
var database *Db

// Db is the in-memory ledger database shared by every scenario.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens and migrates the shared database on first use.
func NewDb() *Db {
	once.Do(func() {
		database = open()
	})
	return database
}

func open() *Db {
	conn, err := db.NewSQLiteConnection(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}
	if err := conn.AutoMigrate(); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	d := &Db{
		DbConn: conn.DB(),
		models: make(map[string]any),
	}
	for _, m := range db.Models() {
		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		d.models[stmt.Schema.Table] = m
		d.order = append(d.order, stmt.Schema.Table)
	}
	return d
}

// ClearDB deletes every row, children before parents.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec("DELETE FROM " + d.order[i]).Error; err != nil {
			return fmt.Errorf("clear %s: %w", d.order[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

// Count returns the number of rows in table matching every criterion.
func (d *Db) Count(table string, criteria map[string]any) (int64, error) {
	model, ok := d.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	query := d.DbConn.Model(model)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
