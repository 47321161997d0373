package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"fcfs-scheduler/internal/board"
	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/logger"
	"fcfs-scheduler/internal/requests"
	"fcfs-scheduler/internal/responses"
	"fcfs-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ListJobs(ctx *fiber.Ctx) error
	AddJob(ctx *fiber.Ctx) error
	ClearJobs(ctx *fiber.Ctx) error
	RunBoard(ctx *fiber.Ctx) error
	LastSchedule(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	board  *board.Board
	logger *logger.Logger
}

func NewSchedulerHandlerImpl(board *board.Board, log *logger.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{board: board, logger: log}
}

// FirstComeFirstServe schedules the jobs in the request body without touching the board.
func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}

	started := time.Now()
	schedule, err := schedulers.ScheduleFirstComeFirstServe(request.ToCore())
	if err != nil {
		return s.writeError(ctx, err)
	}
	s.requestLogger(ctx).LogScheduleRun("request", len(schedule.Jobs),
		schedule.AverageWaitingTime, schedule.AverageTurnaroundTime, schedule.Metric.TotalTime, time.Since(started))

	return ctx.JSON(schedulers.GenerateResponse(schedule))
}

func (s *SchedulerHandlerImpl) ListJobs(ctx *fiber.Ctx) error {
	return ctx.JSON(s.boardResponse())
}

func (s *SchedulerHandlerImpl) AddJob(ctx *fiber.Ctx) error {
	var request requests.Job
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}

	if err := s.board.Add(request.ToCore()); err != nil {
		return s.writeError(ctx, err, request.JobId)
	}
	return ctx.Status(fiber.StatusCreated).JSON(s.boardResponse())
}

func (s *SchedulerHandlerImpl) ClearJobs(ctx *fiber.Ctx) error {
	s.board.Clear()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) RunBoard(ctx *fiber.Ctx) error {
	started := time.Now()
	schedule, err := s.board.Run()
	if err != nil {
		return s.writeError(ctx, err)
	}
	s.requestLogger(ctx).LogScheduleRun("board", len(schedule.Jobs),
		schedule.AverageWaitingTime, schedule.AverageTurnaroundTime, schedule.Metric.TotalTime, time.Since(started))

	return ctx.JSON(schedulers.GenerateResponse(schedule))
}

func (s *SchedulerHandlerImpl) LastSchedule(ctx *fiber.Ctx) error {
	schedule, ok := s.board.Last()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "no schedule has been run yet"})
	}
	return ctx.JSON(schedulers.GenerateResponse(schedule))
}

func (s *SchedulerHandlerImpl) SetMode(ctx *fiber.Ctx) error {
	var request requests.ModeRequest
	if err := ctx.BodyParser(&request); err != nil || request.Realistic == nil {
		return badRequest(ctx)
	}
	s.board.SetRealistic(*request.Realistic)
	return ctx.JSON(s.boardResponse())
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) boardResponse() responses.BoardResponse {
	jobs := s.board.Jobs()
	response := responses.BoardResponse{
		Realistic: s.board.Realistic(),
		Started:   s.board.Started(),
		Jobs:      make([]responses.JobResponse, 0, len(jobs)),
	}
	for _, job := range jobs {
		response.Jobs = append(response.Jobs, responses.JobResponse{
			JobId:       job.ID,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		})
	}
	return response
}

func (s *SchedulerHandlerImpl) requestLogger(ctx *fiber.Ctx) *logger.Logger {
	if requestID, ok := ctx.Locals(requestIDKey).(string); ok {
		return s.logger.WithRequestID(requestID)
	}
	return s.logger
}

// writeError maps scheduling and board errors to a status code. jobID is
// reported for errors that do not carry one themselves.
func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error, jobID ...string) error {
	response := responses.ErrorResponse{Error: err.Error()}
	if len(jobID) > 0 {
		response.JobId = jobID[0]
	}

	status := fiber.StatusInternalServerError
	var invalid *core.InvalidJobError
	switch {
	case errors.As(err, &invalid):
		status = fiber.StatusUnprocessableEntity
		response.JobId = invalid.JobID
	case errors.Is(err, core.ErrEmptyBatch), errors.Is(err, board.ErrEmptyID):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, board.ErrDuplicateJob):
		status = fiber.StatusConflict
	case errors.Is(err, board.ErrLocked):
		status = fiber.StatusLocked
	}

	if status == fiber.StatusInternalServerError {
		s.requestLogger(ctx).WithError(err).Error().Msg("Unexpected scheduling error")
	} else {
		s.requestLogger(ctx).Debug().Err(err).Int("status_code", status).Msg("Request rejected")
	}
	return ctx.Status(status).JSON(response)
}

func badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}
