//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"receipt-points/internal/pkg/clock"
	"receipt-points/internal/pkg/errs"
	"receipt-points/internal/usecase/commands"
	"receipt-points/internal/usecase/shared"
	"receipt-points/tests/common/builder"
	sharedmock "receipt-points/tests/mock/shared"

	errors "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReceiptCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *sharedmock.MockReceiptStore
	clock     *clock.FixedClock
	cmds      commands.ReceiptCommands
}

func (s *ReceiptCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockReceiptStore(s.mockCtrl)
	s.clock = clock.NewFixedClock(time.Date(2022, 3, 20, 14, 33, 0, 0, time.UTC))
	s.cmds = commands.NewReceiptCommands(s.mockStore, s.clock)
}

func (s *ReceiptCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReceiptCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReceiptCommandsTestSuite))
}

func (s *ReceiptCommandsTestSuite) TestProcess() {
	s.Run("success: scores eagerly and stores once", func() {
		var stored shared.ReceiptRecord
		s.mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record shared.ReceiptRecord) error {
				stored = record
				return nil
			}).Times(1)

		result, err := s.cmds.Process(context.Background(), builder.NewReceiptBuilder().BuildCommand())
		s.Require().NoError(err)
		s.Require().NotNil(result)

		s.NotEqual(uuid.Nil, result.ReceiptID)
		s.Equal(result.ReceiptID, stored.ID)
		s.Equal(109, stored.Points, "points are computed at submission time")
		s.Equal(109, result.Points)
		s.Equal(s.clock.Now(), stored.ReceivedAt)
		s.Equal("M&M Corner Market", stored.Receipt.Retailer)
	})

	s.Run("distinct submissions get distinct identifiers", func() {
		seen := map[uuid.UUID]bool{}
		s.mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record shared.ReceiptRecord) error {
				s.False(seen[record.ID])
				seen[record.ID] = true
				return nil
			}).Times(2)

		req := builder.NewReceiptBuilder().BuildCommand()
		_, err := s.cmds.Process(context.Background(), req)
		s.Require().NoError(err)
		_, err = s.cmds.Process(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("validation failure: nothing stored, no identifier issued", func() {
		// no Put expectation: the store must not be touched
		req := builder.NewReceiptBuilder().WithRetailer("Target^^").BuildCommand()

		result, err := s.cmds.Process(context.Background(), req)
		s.Require().Error(err)
		s.Nil(result)
		s.True(errors.Is(err, errs.ErrInvalidReceipt))
		s.Contains(err.Error(), "retailer")
	})

	s.Run("store failure: surfaced as store operation error", func() {
		s.mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			Return(errs.New("connection lost")).Times(1)

		result, err := s.cmds.Process(context.Background(), builder.NewReceiptBuilder().BuildCommand())
		s.Require().Error(err)
		s.Nil(result)
		s.True(errors.Is(err, errs.ErrStoreOperationFailed))
	})
}
