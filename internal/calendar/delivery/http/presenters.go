package http

import (
	"calendarhub/internal/calendar"
	"calendarhub/internal/model"
)

// --- Request DTOs ---

type syncReq struct {
	Direction string `json:"direction"`
}

func (r syncReq) toDirection() (calendar.Direction, error) {
	return calendar.ParseDirection(r.Direction)
}

// --- Response DTOs ---

type syncResultResp struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type syncResultsResp struct {
	OutlookToGoogle *syncResultResp `json:"outlookToGoogle"`
	GoogleToOutlook *syncResultResp `json:"googleToOutlook"`
}

type syncResp struct {
	Success bool            `json:"success"`
	Results syncResultsResp `json:"results"`
}

func newSyncResultResp(res *calendar.SyncResult) *syncResultResp {
	if res == nil {
		return nil
	}
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return &syncResultResp{
		Success: res.Success,
		Failed:  res.Failed,
		Errors:  errs,
	}
}

func (h *handler) newSyncResp(out calendar.SyncOutput) syncResp {
	return syncResp{
		Success: true,
		Results: syncResultsResp{
			OutlookToGoogle: newSyncResultResp(out.OutlookToGoogle),
			GoogleToOutlook: newSyncResultResp(out.GoogleToOutlook),
		},
	}
}

type eventResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Provider string `json:"provider"`
}

type providersResp struct {
	Outlook bool `json:"outlook"`
	Google  bool `json:"google"`
}

type eventsResp struct {
	Events    []eventResp   `json:"events"`
	Providers providersResp `json:"providers"`
}

func (h *handler) newEventsResp(out calendar.ListEventsOutput) eventsResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, newEventResp(ev))
	}
	return eventsResp{
		Events: events,
		Providers: providersResp{
			Outlook: out.Providers.Outlook,
			Google:  out.Providers.Google,
		},
	}
}

func newEventResp(ev model.CalendarEvent) eventResp {
	return eventResp{
		ID:       ev.ID,
		Title:    ev.Title,
		Start:    ev.Start,
		End:      ev.End,
		Provider: string(ev.Provider),
	}
}
