package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/wanderforge/wander-api/internal/clients/external"
	"github.com/wanderforge/wander-api/internal/clients/gamedata"
	"github.com/wanderforge/wander-api/internal/engine/timing"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/orchestrators/combat"
	"github.com/wanderforge/wander-api/internal/pkg/clock"
	"github.com/wanderforge/wander-api/internal/pkg/idgen"
	"github.com/wanderforge/wander-api/internal/pkg/rng"
	redisclient "github.com/wanderforge/wander-api/internal/redis"
	combathistory "github.com/wanderforge/wander-api/internal/repositories/combat_history"
	combatsession "github.com/wanderforge/wander-api/internal/repositories/combat_session"
	"github.com/wanderforge/wander-api/internal/repositories/currency"
)

var (
	grpcPort     int
	redisAddress string
	dataDir      string
	sessionTTL   time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Wander combat API server with its full dependency graph wired.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding the gamedata YAML catalogs")
	serverCmd.Flags().DurationVar(&sessionTTL, "session-ttl", combat.DefaultSessionTTL, "combat session lifetime")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	combatService, err := buildCombatService()
	if err != nil {
		return fmt.Errorf("failed to build combat service: %w", err)
	}
	_ = combatService // consumed by the game-facing RPC handlers once they land

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
			errorUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
			errorStreamInterceptor,
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildCombatService wires the full dependency graph: Redis-backed stores,
// the YAML gamedata catalogs, and the combat orchestrator.
func buildCombatService() (combat.Service, error) {
	redisClient, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	roller := rng.New()

	sessionRepo, err := combatsession.NewRedisRepository(&combatsession.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, err
	}

	historyRepo, err := combathistory.NewRedisRepository(&combathistory.Config{
		Client: redisClient,
	})
	if err != nil {
		return nil, err
	}

	ledger, err := currency.NewRedisLedger(&currency.Config{
		Client: redisClient,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := gamedata.LoadCatalog(dataDir)
	if err != nil {
		return nil, err
	}

	provider, err := gamedata.NewProvider(&gamedata.Config{
		Catalog: catalog,
		Roller:  roller,
	})
	if err != nil {
		return nil, err
	}

	equipmentProvider, err := defaultEquipmentProvider(provider)
	if err != nil {
		return nil, err
	}

	service, err := combat.NewOrchestrator(&combat.Config{
		SessionRepo:       sessionRepo,
		HistoryRepo:       historyRepo,
		LocationProvider:  provider,
		EquipmentProvider: equipmentProvider,
		EnemyProvider:     provider,
		CurrencyLedger:    ledger,
		IDGenerator:       idgen.NewUUID("session"),
		Roller:            roller,
		SessionTTL:        sessionTTL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("combat service wired",
		"redis_address", redisAddress,
		"data_dir", dataDir,
		"session_ttl", sessionTTL,
	)
	return service, nil
}

// defaultEquipmentProvider serves a fixed starter loadout until the profile
// service's equipment reads are hooked up.
func defaultEquipmentProvider(provider *gamedata.Provider) (external.EquipmentProvider, error) {
	starterStats := entities.Stats{AtkPower: 12, AtkAccuracy: 6, DefPower: 5, DefAccuracy: 3}

	weapon, err := provider.WeaponPattern("pattern_single_arc")
	if err != nil {
		// Catalog without the starter pattern, fall back to the built-in arc.
		weapon = &external.WeaponProfile{
			PatternID: "pattern_single_arc",
			SpinRate:  1.0,
			Bands:     timing.DefaultPattern(),
		}
	}

	return gamedata.NewStaticEquipmentProvider(starterStats, *weapon)
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}

// errorUnaryInterceptor maps internal error codes onto gRPC statuses at the
// transport boundary, so handlers return domain errors directly.
func errorUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	return resp, errors.ToGRPCError(err)
}

func errorStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	return errors.ToGRPCError(handler(srv, ss))
}
