package container

import (
	"context"
	"fmt"
	"time"

	"classweb-backend/internal/config"
	infracache "classweb-backend/internal/infrastructure/cache"
	"classweb-backend/internal/infrastructure/database"
	"classweb-backend/pkg/cache"
	"classweb-backend/pkg/jwt"
	"classweb-backend/pkg/logger"

	authhandler "classweb-backend/internal/domains/auth/handler"
	authservice "classweb-backend/internal/domains/auth/service"
	"classweb-backend/internal/domains/content"
	contenthandler "classweb-backend/internal/domains/content/handler"
	contentrepo "classweb-backend/internal/domains/content/repository"
	contentservice "classweb-backend/internal/domains/content/service"
)

// Container is the root of the dependency graph: config, infrastructure,
// then one repository/service/handler chain per content kind plus auth.
// Everything is a singleton living for the whole process.
type Container struct {
	Config     *config.Config
	Mongo      *database.MongoDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthHandler *authhandler.AuthHandler

	InfoHandler      contenthandler.ResourceHandler
	GalleryHandler   contenthandler.ResourceHandler
	DirectoryHandler contenthandler.ResourceHandler
	AgendaHandler    contenthandler.ResourceHandler
	AboutHandler     contenthandler.ResourceHandler

	redis *infracache.RedisCache
}

// NewContainer initializes the whole dependency graph in order:
// config → Mongo → Redis → JWT → domains. Any failure aborts startup.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	c.Mongo = mongoDB
	logger.Info("mongo connected", map[string]interface{}{"database": cfg.Mongo.Database})

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(connectCtx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.redis = redisCache
	c.Cache = redisCache
	logger.Info("redis connected", map[string]interface{}{"host": cfg.Redis.Host})

	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTExpiryHours)*time.Hour)

	c.AuthHandler = authhandler.NewAuthHandler(
		authservice.NewAuthService(cfg.Auth, c.JWTManager, c.Cache),
	)

	db := mongoDB.Database

	infoRepo := contentrepo.NewMongoRepository[content.Info](db, content.KindInfo)
	infoService := contentservice.NewContentService[content.Info, *content.CreateInfoRequest, *content.UpdateInfoRequest](content.KindInfo, infoRepo, c.Cache)
	c.InfoHandler = contenthandler.NewContentHandler(infoService, "Info")

	galleryRepo := contentrepo.NewMongoRepository[content.Gallery](db, content.KindGallery)
	galleryService := contentservice.NewContentService[content.Gallery, *content.CreateGalleryRequest, *content.UpdateGalleryRequest](content.KindGallery, galleryRepo, c.Cache)
	c.GalleryHandler = contenthandler.NewContentHandler(galleryService, "Gallery")

	directoryRepo := contentrepo.NewMongoRepository[content.Directory](db, content.KindDirectory)
	directoryService := contentservice.NewContentService[content.Directory, *content.CreateDirectoryRequest, *content.UpdateDirectoryRequest](content.KindDirectory, directoryRepo, c.Cache)
	c.DirectoryHandler = contenthandler.NewContentHandler(directoryService, "Directory")

	agendaRepo := contentrepo.NewMongoRepository[content.Agenda](db, content.KindAgenda)
	agendaService := contentservice.NewContentService[content.Agenda, *content.CreateAgendaRequest, *content.UpdateAgendaRequest](content.KindAgenda, agendaRepo, c.Cache)
	c.AgendaHandler = contenthandler.NewContentHandler(agendaService, "Agenda")

	aboutRepo := contentrepo.NewMongoRepository[content.About](db, content.KindAbout)
	aboutService := contentservice.NewContentService[content.About, *content.CreateAboutRequest, *content.UpdateAboutRequest](content.KindAbout, aboutRepo, c.Cache)
	c.AboutHandler = contenthandler.NewContentHandler(aboutService, "About")

	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.Mongo != nil {
		if err := c.Mongo.Close(ctx); err != nil {
			logger.Error("mongo disconnect failed", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("redis close failed", err)
		}
	}
}
