package tracker_test

import (
	"math/rand"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/tracker/mocks"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
)

// reusable test data
var (
	batchSize                      = uint(2) // will affect tests results when changed
	dest                           = "-1257786"
	createdAt                      = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	now                            = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	parsingID                      = rand.Int()
	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}

type observedParsing struct {
	parsingType models.ParsingType
	success     bool
	failed      int
}

type recordingObserver struct {
	parsings           []observedParsing
	sent, sendFailures int
}

func (o *recordingObserver) ObserveParsing(parsingType models.ParsingType, success bool, failed int) {
	o.parsings = append(o.parsings, observedParsing{parsingType: parsingType, success: success, failed: failed})
}

func (o *recordingObserver) ObserveNotifications(sent, failed int) {
	o.sent += sent
	o.sendFailures += failed
}

func startedParsing(parsingType models.ParsingType) *models.Parsing {
	return &models.Parsing{
		ID:        parsingID,
		Type:      parsingType,
		CreatedAt: createdAt,
	}
}

func finishedParsing(parsingType models.ParsingType, parsed, failed int, status string) *models.Parsing {
	parsing := startedParsing(parsingType)
	parsing.FinishedAt = &now
	parsing.IsSuccess = lo.ToPtr(status == "")
	parsing.ParsedItems = lo.ToPtr(int32(parsed))
	parsing.FailedItems = lo.ToPtr(int32(failed))
	if status != "" {
		parsing.StatusMessage = lo.ToPtr(status)
	}

	return parsing
}

func mockStorageStartParsing(storage *mocks.Storage, parsingType models.ParsingType, parsing *models.Parsing, err error) {
	storage.On("StartParsing", mock.Anything, parsingType).Return(parsing, err).Once()
}

func mockStorageFinishParsing(storage *mocks.Storage, parsing *models.Parsing, err error) {
	storage.On("FinishParsing", mock.Anything, parsing).Return(err).Once()
}
