package storage

import (
	"encoding/json"

	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/store"
)

func encodeSession(session models.Session) ([]byte, error) {
	return json.Marshal(session)
}

func decodeSession(payload []byte) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Restore loads the persisted session, if any, and dispatches it into the
// store. Best-effort: any failure is logged and the store keeps its fresh
// initial state, as if no prior session existed. Call once, before the
// first user-driven dispatch.
func Restore(st *store.Store, sessions SessionStore, logger *zap.Logger) {
	session, err := sessions.Load()
	if err != nil {
		logger.Warn("session restore failed, starting fresh", zap.Error(err))
		return
	}
	if session == nil {
		return
	}
	st.Dispatch(store.InitSession{User: session.User, Cart: session.Cart})
}

// Watch subscribes to the store and persists the {user, cart} pair after
// every transition. Write failures are logged and swallowed; in-memory
// state stays authoritative. Single attempt per change, no retry.
func Watch(st *store.Store, sessions SessionStore, logger *zap.Logger) {
	st.Subscribe(func(s store.State) {
		err := sessions.Save(models.Session{User: s.User, Cart: s.Cart})
		if err != nil {
			logger.Warn("session persist failed", zap.Error(err))
		}
	})
}
