package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/beautyauthsvc/domain"
	"github.com/you/beautyauthsvc/internal/config"
	"github.com/you/beautyauthsvc/internal/infrastructure/auth"
	"github.com/you/beautyauthsvc/internal/infrastructure/database"
	"github.com/you/beautyauthsvc/internal/infrastructure/repositories"
	"github.com/you/beautyauthsvc/internal/services"
	"github.com/you/beautyauthsvc/pkg/log"
)

// Container holds all dependencies. Connections are opened once here and
// injected; nothing below this layer touches global state.
type Container struct {
	Config *config.Config
	Logger log.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo     domain.UserRepository
	SessionRepo  domain.SessionRepository
	ProfileRepo  domain.ProfileRepository
	ProfileCache domain.ProfileCache

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	ProfileSvc  domain.ProfileService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger log.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db,
		&repositories.DBUser{},
		&repositories.DBSession{},
		&repositories.DBProfile{},
	); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(
		c.Config.RedisAddr,
		c.Config.RedisPassword,
		c.Config.RedisDB,
	).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.DB, c.Config.RefreshTTL)
	c.ProfileRepo = repositories.NewProfileRepository(c.DB)
	c.ProfileCache = repositories.NewProfileCache(c.RedisClient, c.Config.ProfileCacheTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Logger,
	)
	c.ProfileSvc = services.NewProfileService(
		c.ProfileRepo,
		c.ProfileCache,
		c.Logger,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
