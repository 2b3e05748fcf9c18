package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, DefaultExpenseCategories, cfg.Catalog.ExpenseCategories)
	assert.Equal(t, "http://localhost:5000/api", cfg.Client.APIURL)
	assert.Equal(t, 5, cfg.Client.RecentLimit)
	assert.Equal(t, 3*time.Second, cfg.Client.ToastTimeout)
	assert.Zero(t, cfg.Client.Timeout)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_DRIVER", "sqlite")
	v.Set("DB_PATH", "/tmp/pos.db")
	v.Set("EXPENSE_CATEGORIES", "Gás,Limpeza")
	cfg := fromViper(v)

	assert.Equal(t, "/tmp/pos.db", cfg.Database.DSN())
	assert.Equal(t, []string{"Gás", "Limpeza"}, cfg.Catalog.ExpenseCategories)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Driver: "mysql", User: "root", Password: "pw", Host: "db", Port: "3306", Name: "vendas"}
	assert.Equal(t, "root:pw@tcp(db:3306)/vendas?charset=utf8mb4&parseTime=True&loc=Local", db.DSN())

	db.Driver = "postgres"
	db.SSLMode = "disable"
	db.Timezone = "UTC"
	assert.Equal(t, "host=db user=root password=pw dbname=vendas port=3306 sslmode=disable TimeZone=UTC", db.DSN())
}

func TestLocationFallsBack(t *testing.T) {
	app := AppConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.Local, app.Location())
}
