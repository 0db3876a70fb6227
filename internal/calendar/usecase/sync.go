package usecase

import (
	"context"
	"errors"
	"sync"

	"calendarhub/internal/calendar"
	"calendarhub/internal/model"
	"calendarhub/internal/user/repository"
)

// Sync runs the requested direction(s) to completion. Token loading happens
// once, up front: a missing credential rejects the call before any network
// I/O. Every direction needs both providers (one as source, one as
// destination).
func (uc *useCase) Sync(ctx context.Context, userID string, direction calendar.Direction) (calendar.SyncOutput, error) {
	var out calendar.SyncOutput

	if !direction.Valid() {
		return out, calendar.ErrInvalidDirection
	}

	outlookTok, err := uc.loadTokens(ctx, userID, model.ProviderOutlook)
	if err != nil {
		return out, err
	}
	googleTok, err := uc.loadTokens(ctx, userID, model.ProviderGoogle)
	if err != nil {
		return out, err
	}

	if direction == calendar.DirectionBoth {
		// The two passes are independent: distinct accumulators, no shared
		// state, and one direction's fetch failure does not stop the other.
		var wg sync.WaitGroup
		var o2g, g2o *calendar.SyncResult
		var o2gErr, g2oErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			o2g, o2gErr = uc.syncOutlookToGoogle(ctx, outlookTok, googleTok)
		}()
		go func() {
			defer wg.Done()
			g2o, g2oErr = uc.syncGoogleToOutlook(ctx, googleTok, outlookTok)
		}()
		wg.Wait()

		if err := errors.Join(o2gErr, g2oErr); err != nil {
			return out, err
		}
		out.OutlookToGoogle = o2g
		out.GoogleToOutlook = g2o
		return out, nil
	}

	if direction == calendar.DirectionOutlookToGoogle {
		out.OutlookToGoogle, err = uc.syncOutlookToGoogle(ctx, outlookTok, googleTok)
		return out, err
	}

	out.GoogleToOutlook, err = uc.syncGoogleToOutlook(ctx, googleTok, outlookTok)
	return out, err
}

func (uc *useCase) loadTokens(ctx context.Context, userID string, provider model.Provider) (model.TokenData, error) {
	tokens, err := uc.userRepo.GetTokens(ctx, userID, provider)
	if errors.Is(err, repository.ErrTokensNotFound) {
		return model.TokenData{}, &calendar.MissingTokensError{Provider: provider}
	}
	return tokens, err
}

// syncOutlookToGoogle reads Outlook events and recreates them on the user's
// Google calendar. The fetch is fatal; each translate/create failure is
// isolated and tallied so one bad event never blocks the rest of the batch.
func (uc *useCase) syncOutlookToGoogle(ctx context.Context, src, dst model.TokenData) (*calendar.SyncResult, error) {
	events, err := uc.outlook.ListEvents(ctx, src.AccessToken, uc.pageSize)
	if err != nil {
		return nil, &calendar.SourceFetchError{Provider: model.ProviderOutlook, Err: err}
	}

	res := &calendar.SyncResult{Errors: []string{}}
	for _, ev := range events {
		payload, err := calendar.TranslateOutlookToGoogle(ev)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		if err := uc.google.CreateEvent(ctx, dst.AccessToken, payload); err != nil {
			uc.l.Warnf(ctx, "sync outlook->google: create event %s: %v", ev.ID, err)
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Success++
	}
	return res, nil
}

// syncGoogleToOutlook is the mirror pass.
func (uc *useCase) syncGoogleToOutlook(ctx context.Context, src, dst model.TokenData) (*calendar.SyncResult, error) {
	events, err := uc.google.ListEvents(ctx, src.AccessToken, int64(uc.pageSize))
	if err != nil {
		return nil, &calendar.SourceFetchError{Provider: model.ProviderGoogle, Err: err}
	}

	res := &calendar.SyncResult{Errors: []string{}}
	for _, ev := range events {
		payload, err := calendar.TranslateGoogleToOutlook(ev)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		if err := uc.outlook.CreateEvent(ctx, dst.AccessToken, payload); err != nil {
			uc.l.Warnf(ctx, "sync google->outlook: create event %s: %v", ev.Id, err)
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Success++
	}
	return res, nil
}
