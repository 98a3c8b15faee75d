// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. SchoolHub
// seeds the configured bootstrap teacher here so a fresh deployment has one
// account authorized to manage announcements.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedTeacher == "" {
		return nil
	}

	teachers := teacherstore.New(deps.MongoDatabase)
	if err := teachers.Ensure(ctx, models.Teacher{
		Username:    appCfg.SeedTeacher,
		DisplayName: appCfg.SeedTeacherName,
	}); err != nil {
		logger.Error("failed to seed bootstrap teacher",
			zap.String("username", appCfg.SeedTeacher),
			zap.Error(err))
		return err
	}

	logger.Info("bootstrap teacher ensured", zap.String("username", appCfg.SeedTeacher))
	return nil
}
