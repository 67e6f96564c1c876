package commands

import (
	"context"
	"log/slog"

	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/shared"
)

type SessionCommands interface {
	// ResolveOrCreate returns the session for the chat, creating it on first
	// contact. Concurrent callers for the same chat get the same session.
	ResolveOrCreate(ctx context.Context, appName string, externalID int64) (*session.Session, error)
	SaveState(ctx context.Context, s *session.Session) error
}

type sessionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSessionUseCase(uow shared.UnitOfWork, clk clock.Clock) SessionCommands {
	return &sessionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *sessionUseCaseImpl) ResolveOrCreate(ctx context.Context, appName string, externalID int64) (*session.Session, error) {
	key, err := session.NewKey(appName, externalID)
	if err != nil {
		return nil, err
	}

	// Every turn after the first finds its session without a transaction.
	existing, err := uc.uow.CommandReads().SessionByKey(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, markStoreFailure(err)
	}

	var resolved *session.Session
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Reads().SessionByKey(ctx, key)
		if derr == nil {
			resolved = s
			return nil
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}

		created, derr := tx.Sessions().CreateIfAbsent(ctx, tx.DB(), session.NewSession(key, uc.clock.Now()))
		if derr != nil {
			return derr
		}
		if created {
			slog.Info("Session created", "app_name", key.AppName, "session_id", key.SessionID)
		}

		// A concurrent insert for the same chat is visible here once it commits.
		s, derr = tx.Reads().SessionByKey(ctx, key)
		if derr != nil {
			return derr
		}
		resolved = s
		return nil
	})
	if err != nil {
		return nil, markStoreFailure(err)
	}
	return resolved, nil
}

func (uc *sessionUseCaseImpl) SaveState(ctx context.Context, s *session.Session) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().SaveState(ctx, tx.DB(), s)
	})
	if err != nil {
		return markStoreFailure(err)
	}
	return nil
}

func markStoreFailure(err error) error {
	if errs.Is(err, errs.ErrUpstreamUnavailable) || errs.Is(err, errs.ErrPersistence) {
		return err
	}
	return errs.Mark(err, errs.ErrPersistence)
}
