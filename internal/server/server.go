package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"guildboard/internal/config"
	"guildboard/internal/discord"
	"guildboard/internal/domain"
	apperrors "guildboard/internal/errors"
	"guildboard/internal/feature"
	"guildboard/internal/platform/correlation"
)

const sessionMaxAgeDays = 7

//go:embed templates/*.html
var templateFS embed.FS

// Discord OAuth2 endpoints.
var discordOAuthEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/api/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

// featureService is the slice of the lifecycle controller the handlers use.
type featureService interface {
	Get(ctx context.Context, guildID string) (*domain.WelcomeFeature, error)
	Enable(ctx context.Context, guildID string) (*domain.WelcomeFeature, error)
	Disable(ctx context.Context, guildID string) (int64, error)
	Update(ctx context.Context, guildID string, in feature.UpdateInput) (int64, error)
}

// viewCache caches rendered feature pages between mutations.
type viewCache interface {
	Get(ctx context.Context, guildID, featureKey string) (string, bool)
	Set(ctx context.Context, guildID, featureKey, html string)
}

// redisPinger is the minimal interface for Redis readiness checks.
type redisPinger interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	features     featureService
	directory    discord.Directory
	views        viewCache
	oauth        *oauth2.Config
	sessionStore *sessions.CookieStore
	templates    *template.Template
	checkDB      func(ctx context.Context) error
	redisClient  redisPinger
	startTime    time.Time
}

func NewServer(
	cfg *config.Config,
	features featureService,
	directory discord.Directory,
	views viewCache,
	checkDB func(ctx context.Context) error,
	redisClient redisPinger,
) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlation.Middleware())
	e.Use(middleware.Logger())
	e.Use(apperrors.Middleware())

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * sessionMaxAgeDays,
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:      e,
		config:    cfg,
		features:  features,
		directory: directory,
		views:     views,
		oauth: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify", "guilds"},
			Endpoint:     discordOAuthEndpoint,
		},
		sessionStore: sessionStore,
		templates:    tmpl,
		checkDB:      checkDB,
		redisClient:  redisClient,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
