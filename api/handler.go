package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/loader"
	"schedsim/internal/logging"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	MultilevelQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) MultilevelQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	batch, opts, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, "all", err)
	}

	results, err := schedulers.RunAll(ctx.UserContext(), batch, opts)
	if err != nil {
		return s.writeError(ctx, "all", err)
	}

	all := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response, err := schedulers.GenerateResponse(result)
		if err != nil {
			return s.writeError(ctx, "all", err)
		}
		all = append(all, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	batch, opts, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, string(policy), err)
	}

	result, err := schedulers.Run(policy, batch, opts)
	if err != nil {
		return s.writeError(ctx, string(policy), err)
	}
	response, err := schedulers.GenerateResponse(result)
	if err != nil {
		return s.writeError(ctx, string(policy), err)
	}

	s.log.Info("schedule computed",
		slog.String("policy", string(policy)),
		slog.String("run_id", response.RunId),
		slog.Int("processes", len(batch)),
		slog.Int("total_time", response.TotalTime))
	return ctx.JSON(response)
}

// parseRequest accepts either a JSON body or a text/plain body in the
// loader's line format with options passed as query parameters.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]*core.Process, schedulers.Options, error) {
	opts := s.config.Options()

	if strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMETextPlain) {
		batch, err := loader.LoadBatch(bytes.NewReader(ctx.Body()), "request body")
		if err != nil {
			return nil, opts, err
		}
		for name, target := range map[string]*int{
			"time_quantum":       &opts.TimeQuantum,
			"high_quantum":       &opts.HighQuantum,
			"low_quantum":        &opts.LowQuantum,
			"priority_threshold": &opts.PriorityThreshold,
		} {
			raw := ctx.Query(name)
			if raw == "" {
				continue
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, opts, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("query parameter %s is not an integer", name))
			}
			*target = v
		}
		return batch, opts, nil
	}

	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, opts, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if request.TimeQuantum != nil {
		opts.TimeQuantum = *request.TimeQuantum
	}
	if request.HighQuantum != nil {
		opts.HighQuantum = *request.HighQuantum
	}
	if request.LowQuantum != nil {
		opts.LowQuantum = *request.LowQuantum
	}
	if request.PriorityThreshold != nil {
		opts.PriorityThreshold = *request.PriorityThreshold
	}
	return request.Processes(), opts, nil
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, policy string, err error) error {
	status := fiber.StatusInternalServerError

	var (
		fiberErr  *fiber.Error
		formatErr *loader.FormatError
		optionErr *schedulers.InvalidOptionError
	)
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.As(err, &formatErr), errors.As(err, &optionErr), errors.Is(err, core.ErrInvalidProcess):
		status = fiber.StatusBadRequest
	}

	if status >= fiber.StatusInternalServerError {
		s.log.Error("can not process request", slog.String("policy", policy), logging.ErrAttr(err))
	} else {
		s.log.Debug("rejected request", slog.String("policy", policy), logging.ErrAttr(err))
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
