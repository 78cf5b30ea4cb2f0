package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
	"github.com/mentesana/cuestionarios-api/internal/config"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
	"github.com/mentesana/cuestionarios-api/internal/infrastructure/database"
)

// Barrido de mantenimiento sobre los cuestionarios almacenados, ejecutable
// fuera del servidor HTTP. El modo es obligatorio:
//
//	repair -mode=fix    sustituye respuestas corruptas por el centinela
//	repair -mode=clean  elimina las filas con corrupción irrecuperable
func main() {
	mode := flag.String("mode", "", "política del barrido: fix o clean")
	flag.Parse()

	if *mode != "fix" && *mode != "clean" {
		log.Println("❌ Debes indicar -mode=fix o -mode=clean")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	repo := repositories.NewQuestionnaireRepository(db)
	repair := usecases.NewRepairUseCase(repo, gocache.New(time.Minute, time.Minute))

	ctx := context.Background()
	start := time.Now()

	var report usecases.RepairReport
	if *mode == "fix" {
		report, err = repair.Fix(ctx)
	} else {
		report, err = repair.Clean(ctx)
	}
	if err != nil {
		log.Fatalf("❌ Error ejecutando el barrido: %v", err)
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	log.Printf("✅ Barrido %s terminado en %v:\n%s", *mode, time.Since(start), out)
}
