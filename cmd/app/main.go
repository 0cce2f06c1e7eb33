package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/external/vendorai"
	"github.com/zapzocket/studio/internal/cart"
	"github.com/zapzocket/studio/internal/config"
	"github.com/zapzocket/studio/internal/notify"
	"github.com/zapzocket/studio/internal/price"
	"github.com/zapzocket/studio/internal/search"
	"github.com/zapzocket/studio/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// EXTERNALS
	// ======================
	api := shopapi.NewClient(cfg.BackendBaseURL)

	var recommender vendorai.Recommender
	if cfg.UseVendorAI {
		recommender, err = vendorai.NewFlowRecommender(cfg.VendorAIURL)
		if err != nil {
			logger.Fatal("vendor recommendation setup failed", zap.Error(err))
		}
	} else {
		recommender = vendorai.NewKeywordRecommender()
	}

	// ======================
	// AMBIENT PIECES
	// ======================
	center := notify.NewCenter(logger, 50)

	tag, err := language.Parse(cfg.DisplayLocale)
	if err != nil {
		tag = language.English
	}
	fmtr := price.NewFormatter(tag)

	// ======================
	// CART STORE (single per-session instance, owned here)
	// ======================
	var storeOpts []cart.Option
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unavailable, cart mirror disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			storeOpts = append(storeOpts, cart.WithMirror(cart.NewRedisMirror(rdb)))
		}
	}
	store := cart.NewStore(api, center, logger, storeOpts...)
	if err := store.LoadInitial(context.Background()); err != nil {
		// mirror-seeded items (if any) remain until a later load succeeds
		logger.Warn("initial cart load failed", zap.Error(err))
	}

	// ======================
	// SERVICES
	// ======================
	catalogSvc := services.NewCatalogService(api, logger)
	vendorSvc := services.NewVendorService(api, logger)
	articleSvc := services.NewArticleService()
	coordinator := search.NewCoordinator(catalogSvc, recommender, logger)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	shop := e.Group("/shop")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerHomeRoutes(shop, catalogSvc, articleSvc, store, fmtr)
	registerProductRoutes(shop, catalogSvc, fmtr)
	registerSearchRoutes(shop, coordinator)
	registerCartRoutes(shop, store, fmtr)
	registerVendorRoutes(shop, vendorSvc, catalogSvc, fmtr)
	registerArticleRoutes(shop, articleSvc)
	registerNotificationRoutes(shop, center)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
