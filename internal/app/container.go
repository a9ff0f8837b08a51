package app

import (
	"context"
	"log"
	"time"

	"tastebook/internal/config"
	"tastebook/internal/database"
	"tastebook/internal/database/migration"
	dbpostgres "tastebook/internal/database/postgres"
	"tastebook/internal/delivery/http/handler"
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/routes"
	"tastebook/internal/infrastructure/cache"
	pgpersist "tastebook/internal/infrastructure/persistence/postgres"
	"tastebook/internal/pkg/jwt"
	"tastebook/internal/repository"
	"tastebook/internal/usecase"
	"tastebook/internal/ws"
)

// Container wires the process-wide singletons: one DB pool, one cache
// client, one notification hub, shared by reference across all requests.
type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Registry *routes.Registry

	userRepo *pgpersist.UserRepository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	userRepo, err := pgpersist.NewUserRepository(db.SQLDB())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc).Middleware()

	profileRepo := repository.NewPostgresProfileRepository(db)
	contentRepo := repository.NewPostgresContentRepository(db)
	commentRepo := repository.NewPostgresCommentRepository(db)
	likeRepo := repository.NewPostgresLikeRepository(db)
	followRepo := repository.NewPostgresFollowRepository(db)

	notifier := ws.NewHubNotifier(hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, contentRepo, c)
	contentUC := usecase.NewContentUsecase(contentRepo, c)
	followUC := usecase.NewFollowUsecase(followRepo, profileRepo, notifier)
	likeUC := usecase.NewLikeUsecase(likeRepo, contentRepo, profileRepo, notifier)
	commentUC := usecase.NewCommentUsecase(commentRepo, contentRepo, profileRepo, notifier)

	registry := &routes.Registry{
		Auth:     handler.NewAuthHandler(authUC),
		Profiles: handler.NewProfileHandler(profileUC, authMw),
		Recipes:  handler.NewRecipeHandler(contentUC, authMw),
		Blogs:    handler.NewBlogHandler(contentUC, authMw),
		Follows:  handler.NewFollowHandler(followUC, authMw),
		Likes:    handler.NewLikeHandler(likeUC, authMw),
		Comments: handler.NewCommentHandler(commentUC, authMw),
		WS:       ws.NewHandler(hub, logger),
		AuthMw:   authMw,
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    c,
		Hub:      hub,
		Registry: registry,
		userRepo: userRepo,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.userRepo != nil {
		_ = c.userRepo.Close()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
