package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// Models lists every table the service owns, parents first.
var Models = []any{
	&models.Device{},
	&models.Component{},
	&models.Alert{},
	&models.Position{},
	&models.Intervention{},
	&models.Failure{},
}

func GetInstance(dialector gorm.Dialector) *DB {
	logger := common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(Models...); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed", zap.Int("tables", len(Models)))

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

// Both dialectors turn on foreign keys per connection through the DSN, a
// PRAGMA issued once would only reach a single pooled connection.
func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyIOTDbPath); !found || dbPath == "" {
		dbPath = common.DefaultDbPath
	}
	return sqlite.Open(dbPath + "?_foreign_keys=1")
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared&_foreign_keys=1")
}
