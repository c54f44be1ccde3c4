package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/veriscan/veriscan/src/api/config"
	"github.com/veriscan/veriscan/src/api/data"
	"github.com/veriscan/veriscan/src/api/types"
	"github.com/veriscan/veriscan/src/api/webserver"
	"github.com/veriscan/veriscan/src/classifier"
	"github.com/veriscan/veriscan/src/content"
	"github.com/veriscan/veriscan/src/evidence"
	"github.com/veriscan/veriscan/src/forensics"
	"github.com/veriscan/veriscan/src/similarity"
	"github.com/veriscan/veriscan/src/verdict"
	"github.com/veriscan/veriscan/src/webclient"
)

var allModels = []interface{}{
	&types.User{}, &types.Scan{},
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func pruneScans(db *gorm.DB, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := db.Where("created_at < ?", cutoff).Delete(&types.Scan{})
	if res.Error != nil {
		log.Printf("scan prune: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("scan prune: removed %d rows older than %s", res.RowsAffected, cutoff.Format("2006-01-02"))
	}
}

func buildSources(cfg config.Config, client *http.Client) ([]evidence.Source, *evidence.NYTimes) {
	var sources []evidence.Source
	var nyt *evidence.NYTimes

	if cfg.NYTimes.Enabled {
		nyt = evidence.NewNYTimes(cfg.NYTimes.APIKey, cfg.NYTimes.Weight, cfg.NYTimes.MaxResults, client)
		sources = append(sources, nyt)
	}
	if cfg.Guardian.Enabled {
		sources = append(sources, evidence.NewGuardian(cfg.Guardian.APIKey, cfg.Guardian.Weight, cfg.Guardian.MaxResults, client))
	}
	if cfg.NewsRSS.Enabled {
		sources = append(sources, evidence.NewNewsRSS(cfg.NewsRSS.Weight, cfg.NewsRSS.MaxResults))
	}
	if cfg.FactCheck.Enabled {
		sources = append(sources, evidence.NewFactCheck(cfg.FactCheck.APIKey, cfg.FactCheck.Weight, cfg.FactCheck.MaxResults, client))
	}
	return sources, nyt
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// The trained model is loaded once and shared read-only; concurrent
	// requests score without locking.
	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("classifier: %v", err)
	}

	db := data.MustMySQL(cfg.MySQLDSN)
	migrate(db)
	rdb := data.MustRedis(cfg.RedisURL)

	evidenceClient := webclient.NewDefault(cfg.EvidenceTimeout)
	sources, nyt := buildSources(cfg, evidenceClient)
	if len(sources) == 0 {
		log.Printf("warning: no evidence sources configured; verdicts will rely on the classifier bonus only")
	}

	retriever := data.NewCachedRetriever(rdb,
		evidence.NewRetriever(cfg.EvidenceTimeout, sources...), cfg.EvidenceCacheTTL)

	engine := verdict.NewEngine(model, retriever, similarity.Scorer{}, verdict.Config{
		SimilarityGate:     cfg.SimilarityGate,
		RealThreshold:      cfg.RealThreshold,
		UncertainThreshold: cfg.UncertainThreshold,
		MLBonusThreshold:   cfg.MLBonusThreshold,
		MLBonus:            cfg.MLBonus,
		QueryChars:         cfg.QueryChars,
		MinTextChars:       cfg.MinTextChars,
	})

	imageEngine := forensics.NewEngine(forensics.Config{
		BlurThreshold:   cfg.BlurThreshold,
		NoiseThreshold:  cfg.NoiseThreshold,
		MinDimension:    cfg.MinDimension,
		BlurPoints:      cfg.BlurPoints,
		NoisePoints:     cfg.NoisePoints,
		DimensionPoints: cfg.DimensionPoints,
		FakeThreshold:   cfg.FakeThreshold,
	})

	var articleResolver content.ArticleResolver
	if nyt != nil {
		articleResolver = nyt
	}
	resolver := content.NewResolver(webclient.NewDefault(cfg.ScrapeTimeout), articleResolver)

	sched := cron.New()
	if _, err := sched.AddFunc("@daily", func() { pruneScans(db, cfg.ScanRetentionDays) }); err != nil {
		log.Fatalf("cron: %v", err)
	}
	sched.Start()

	router := webserver.New(cfg, webserver.Services{
		DB:       db,
		RDB:      rdb,
		News:     engine,
		Image:    imageEngine,
		Resolver: resolver,
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("veriscan API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	sched.Stop()

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
