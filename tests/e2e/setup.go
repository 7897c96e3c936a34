//go:build e2e

package e2e

import (
	"testing"

	"receipt-points/internal/handler"
	"receipt-points/internal/handler/api"
	"receipt-points/internal/infra/store"
	"receipt-points/internal/pkg/clock"
	"receipt-points/internal/pkg/config"
	"receipt-points/internal/usecase/commands"
	"receipt-points/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, *store.MemoryReceiptStore, config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	receiptStore := store.NewMemoryReceiptStore()

	cmds := commands.NewReceiptCommands(receiptStore, clock.NewRealClock())
	q := queries.NewReceiptQueries(receiptStore)
	receiptHandler := api.NewReceiptHandler(cmds, q)

	engine := gin.New()
	handler.NewRouter(engine, cfg, receiptHandler)
	require.NotNil(t, engine, "Routerのセットアップに失敗")

	return engine, receiptStore, cfg
}

// SharedSuite はレシートAPIのE2Eテストで共有する基盤
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *store.MemoryReceiptStore
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Router, s.Store, s.Config = setupE2EEnvironment(s.T())
}

// SetupSubTest はサブテストごとにストアをリセットする
func (s *SharedSuite) SetupSubTest() {
	s.Store = store.NewMemoryReceiptStore()

	cmds := commands.NewReceiptCommands(s.Store, clock.NewRealClock())
	q := queries.NewReceiptQueries(s.Store)
	receiptHandler := api.NewReceiptHandler(cmds, q)

	engine := gin.New()
	handler.NewRouter(engine, s.Config, receiptHandler)
	s.Router = engine
}
