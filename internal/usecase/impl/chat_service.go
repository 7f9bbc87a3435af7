package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/lifecycle"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultDedupWindow = 10 * time.Second

// chatService implements the ChatUsecase interface.
type chatService struct {
	api     service.ChatAPI
	push    service.PushChannel
	hub     *eventHub
	dedup   deduper
	limiter *rate.Limiter
	logger  *slog.Logger

	mu            sync.Mutex
	session       *entity.Session
	state         usecase.ChatState
	conversations []*entity.Conversation
	active        *entity.Conversation
	messages      []*entity.Message
	absorbed      map[string]bool
	drafts        map[string]string
	sending       map[string]bool
	// view is bumped on every view change so late REST responses can be discarded.
	view uint64
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatAPI     service.ChatAPI
	PushChannel service.PushChannel
	Config      *config.Config
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	chatCfg := &config.ChatConfig{}
	if params.Config != nil && params.Config.Chat != nil {
		chatCfg = params.Config.Chat
	}

	window := chatCfg.DedupWindow
	if window <= 0 {
		window = defaultDedupWindow
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if chatCfg.SendRatePerSecond > 0 {
		burst := max(chatCfg.SendBurst, 1)
		limiter = rate.NewLimiter(rate.Limit(chatCfg.SendRatePerSecond), burst)
	}

	return &chatService{
		api:      params.ChatAPI,
		push:     params.PushChannel,
		hub:      newEventHub(chatCfg.EventBuffer, params.Logger),
		dedup:    deduper{window: window, lag: min(defaultEchoLag, window)},
		limiter:  limiter,
		logger:   params.Logger,
		state:    usecase.ChatStateClosed,
		drafts:   make(map[string]string),
		sending:  make(map[string]bool),
		absorbed: make(map[string]bool),
	}
}

// Activate binds the manager to session and connects the push channel.
// A push channel failure is reported but the session stays bound, REST keeps working.
func (s *chatService) Activate(ctx context.Context, session *entity.Session) error {
	if session == nil || session.UserID() == "" {
		return domainerrors.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.session != nil && s.session.UserID() == session.UserID() && s.session.Token == session.Token {
		s.mu.Unlock()

		return nil
	}
	rebind := s.session != nil
	s.mu.Unlock()

	if rebind {
		s.Deactivate()
	}

	s.mu.Lock()
	s.session = session
	s.resetLocked()
	s.mu.Unlock()

	if err := s.push.Connect(ctx, session, s.OnMessageReceived); err != nil {
		s.logger.Error("[Chat] Failed to connect push channel",
			slog.String("user_id", session.UserID()),
			slog.Any("error", err),
		)
		return s.fail(domainerrors.NewNetworkError(err, "connect push channel"))
	}

	s.logger.Info("[Chat] Session activated", slog.String("user_id", session.UserID()))

	return nil
}

// Deactivate drops the session and all conversation state.
func (s *chatService) Deactivate() {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()

		return
	}
	userID := s.session.UserID()
	wasOpen := s.state != usecase.ChatStateClosed
	s.session = nil
	s.resetLocked()
	if wasOpen {
		s.publishStateLocked()
	}
	s.mu.Unlock()

	if err := s.push.Close(); err != nil {
		s.logger.Warn("[Chat] Failed to close push channel", slog.Any("error", err))
	}

	s.logger.Info("[Chat] Session deactivated", slog.String("user_id", userID))
}

// Open enters the list view and fetches the conversations.
func (s *chatService) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()

		return s.fail(domainerrors.ErrNotAuthenticated)
	}
	if s.state == usecase.ChatStateClosed {
		s.state = usecase.ChatStateList
		s.view++
		s.publishStateLocked()
	}
	s.mu.Unlock()

	_, err := s.RefreshConversations(ctx)

	return err
}

func (s *chatService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == usecase.ChatStateClosed {
		return
	}

	s.state = usecase.ChatStateClosed
	s.active = nil
	s.clearMessagesLocked()
	s.view++
	s.publishStateLocked()
}

func (s *chatService) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != usecase.ChatStateConversation {
		return domainerrors.ErrNoActiveConversation
	}

	s.state = usecase.ChatStateList
	s.active = nil
	s.clearMessagesLocked()
	s.view++
	s.publishStateLocked()

	return nil
}

// RefreshConversations replaces the conversation list with the backend's.
func (s *chatService) RefreshConversations(ctx context.Context) ([]*entity.Conversation, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, s.fail(err)
	}

	conversations, err := s.api.ListConversations(ctx, session)
	if err != nil {
		s.logger.Warn("[Chat] Failed to refresh conversations, keeping previous list",
			slog.String("user_id", session.UserID()),
			slog.Any("error", err),
		)

		return nil, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != session {
		return nil, domainerrors.ErrNotAuthenticated
	}

	s.conversations = slices.DeleteFunc(slices.Clone(conversations), func(c *entity.Conversation) bool {
		return c == nil
	})
	if s.active != nil {
		if i := s.indexLocked(s.active.ID); i >= 0 {
			s.active = s.conversations[i]
		}
	}
	s.publishLocked(usecase.Event{Kind: usecase.EventConversationsChanged})

	return slices.Clone(s.conversations), nil
}

// OpenConversation finds the conversation with counterpartyID, creating it through
// REST when the list has none, and enters it. A history failure leaves the
// previous messages in place and is only reported as a notification.
func (s *chatService) OpenConversation(ctx context.Context, counterpartyID string) (*entity.Conversation, error) {
	counterpartyID = strings.TrimSpace(counterpartyID)
	if counterpartyID == "" {
		return nil, s.fail(domainerrors.ErrValidation.WithDetails("counterparty id is required"))
	}

	session, err := s.currentSession()
	if err != nil {
		return nil, s.fail(err)
	}
	if counterpartyID == session.UserID() {
		return nil, s.fail(domainerrors.ErrSelfConversation)
	}

	s.mu.Lock()
	conv := s.findByCounterpartyLocked(counterpartyID)
	s.mu.Unlock()

	if conv == nil {
		conv, err = s.api.OpenConversation(ctx, session, counterpartyID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNetwork) {
				err = domainerrors.NewNetworkErrorAs(domainerrors.ErrStartChatFailed, err, counterpartyID)
			}
			s.logger.Error("[Chat] Failed to open conversation",
				slog.String("counterparty_id", counterpartyID),
				slog.Any("error", err),
			)

			return nil, s.fail(err)
		}

		s.mu.Lock()
		if s.session != session {
			s.mu.Unlock()

			return nil, s.fail(domainerrors.ErrNotAuthenticated)
		}
		if existing := s.indexLocked(conv.ID); existing >= 0 {
			conv = s.conversations[existing]
		} else {
			s.conversations = append([]*entity.Conversation{conv}, s.conversations...)
			s.publishLocked(usecase.Event{Kind: usecase.EventConversationsChanged, ConversationID: conv.ID})
		}
		s.mu.Unlock()
	}

	s.enter(ctx, session, conv)

	return conv, nil
}

// SelectConversation enters a conversation that is already in the list.
func (s *chatService) SelectConversation(ctx context.Context, conversationID string) (*entity.Conversation, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	var conv *entity.Conversation
	if i := s.indexLocked(conversationID); i >= 0 {
		conv = s.conversations[i]
	} else if s.active != nil && s.active.ID == conversationID {
		conv = s.active
	}
	s.mu.Unlock()

	if conv == nil {
		return nil, s.fail(domainerrors.ErrConversationNotFound.WithDetails(conversationID))
	}

	s.enter(ctx, session, conv)

	return conv, nil
}

// enter makes conv the active view and loads its full history.
func (s *chatService) enter(ctx context.Context, session *entity.Session, conv *entity.Conversation) {
	s.mu.Lock()
	if s.active == nil || s.active.ID != conv.ID {
		s.clearMessagesLocked()
	}
	s.active = conv
	s.state = usecase.ChatStateConversation
	s.view++
	view := s.view
	stale := make(map[string]bool, len(s.messages))
	for _, m := range s.messages {
		if m.IsCanonical() {
			stale[m.ID] = true
		}
	}
	s.publishStateLocked()
	s.mu.Unlock()

	history, err := s.api.ListMessages(ctx, session, conv.ID)
	if err != nil {
		s.logger.Warn("[Chat] Failed to load history, keeping cached messages",
			slog.String("conversation_id", conv.ID),
			slog.Any("error", err),
		)
		_ = s.fail(err)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != session || s.view != view {
		s.logger.Debug("[Chat] Discarding history for inactive view", slog.String("conversation_id", conv.ID))

		return
	}

	// the history replaces every cached canonical message known before the fetch
	pending := slices.DeleteFunc(slices.Clone(s.messages), func(m *entity.Message) bool {
		return stale[m.ID]
	})
	s.messages, s.absorbed = s.dedup.reconcile(history, pending)
	s.publishStateLocked()
}

// SendMessage persists text and appends the canonical message to the active view.
// Any failure keeps text as the conversation draft.
func (s *chatService) SendMessage(ctx context.Context, conversationID, text string) (*entity.Message, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, s.fail(err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, s.fail(domainerrors.ErrEmptyMessage)
	}

	s.mu.Lock()
	if conversationID == "" && s.active != nil {
		conversationID = s.active.ID
	}
	if conversationID == "" {
		s.mu.Unlock()

		return nil, s.fail(domainerrors.ErrNoActiveConversation)
	}
	if s.sending[conversationID] {
		s.drafts[conversationID] = text
		s.mu.Unlock()

		return nil, s.fail(domainerrors.ErrSendInFlight)
	}
	if !s.limiter.Allow() {
		s.drafts[conversationID] = text
		s.mu.Unlock()

		return nil, s.fail(domainerrors.ErrSendThrottled)
	}
	s.sending[conversationID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.sending, conversationID)
		s.mu.Unlock()
	}()

	msg, err := s.api.SendMessage(ctx, session, conversationID, text)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNetwork) {
			err = domainerrors.NewNetworkErrorAs(domainerrors.ErrSendFailed, err, conversationID)
		}
		s.logger.Error("[Chat] Failed to send message",
			slog.String("conversation_id", conversationID),
			slog.Any("error", err),
		)

		s.mu.Lock()
		if s.session == session {
			s.drafts[conversationID] = text
		}
		s.mu.Unlock()

		return nil, s.fail(err)
	}

	if msg.ConversationID == "" {
		msg.ConversationID = conversationID
	}

	s.emit(ctx, session, msg, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != session {
		return msg, nil
	}

	delete(s.drafts, conversationID)
	if s.state == usecase.ChatStateConversation && s.active != nil && s.active.ID == conversationID {
		s.appendLocked(msg)
	}
	s.touchLocked(msg)

	return msg, nil
}

// emit notifies the counterparty over the push channel. The message is
// already durable, so a failure is only logged.
func (s *chatService) emit(ctx context.Context, session *entity.Session, msg *entity.Message, text string) {
	s.mu.Lock()
	var recipientID string
	if i := s.indexLocked(msg.ConversationID); i >= 0 {
		recipientID = s.conversations[i].Counterparty.ID
	} else if s.active != nil && s.active.ID == msg.ConversationID {
		recipientID = s.active.Counterparty.ID
	}
	s.mu.Unlock()

	if recipientID == "" {
		s.logger.Warn("[Chat] Unknown recipient, skipping push notification",
			slog.String("conversation_id", msg.ConversationID),
		)

		return
	}

	event := &entity.PushEvent{
		SenderID:        session.UserID(),
		RecipientID:     recipientID,
		ConversationID:  msg.ConversationID,
		Text:            text,
		ClientTimestamp: time.Now(),
	}
	if err := s.push.Emit(ctx, event); err != nil {
		s.logger.Warn("[Chat] Failed to emit push notification",
			slog.String("conversation_id", msg.ConversationID),
			slog.Any("error", err),
		)
	}
}

// OnMessageReceived appends a pushed message to the matching active view.
// Messages for other conversations trigger a list refresh and a notification.
func (s *chatService) OnMessageReceived(event *entity.PushEvent) {
	if event == nil {
		return
	}

	msg := event.Message()

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		s.logger.Debug("[Chat] Dropping push event without session")

		return
	}
	session := s.session

	if s.matchesActiveLocked(msg) {
		if msg.ConversationID == "" {
			msg.ConversationID = s.active.ID
		}
		s.appendLocked(msg)
		s.touchLocked(msg)
		s.mu.Unlock()

		return
	}

	own := msg.SenderID == session.UserID()
	sender := s.senderNameLocked(msg)
	s.mu.Unlock()

	if !own {
		s.publish(usecase.Event{
			Kind:           usecase.EventNotification,
			ConversationID: msg.ConversationID,
			Notification:   "New message from " + sender,
		})
	}

	go s.refreshAfterPush(session)
}

func (s *chatService) refreshAfterPush(session *entity.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	s.mu.Lock()
	current := s.session
	s.mu.Unlock()
	if current != session {
		return
	}

	if _, err := s.RefreshConversations(ctx); err != nil {
		s.logger.Debug("[Chat] Refresh after push failed", slog.Any("error", err))
	}
}

func (s *chatService) Snapshot() *usecase.ChatSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &usecase.ChatSnapshot{
		State:         s.state,
		Conversations: slices.Clone(s.conversations),
		Active:        s.active,
		Messages:      slices.Clone(s.messages),
	}
}

func (s *chatService) Draft(conversationID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.drafts[conversationID]
}

func (s *chatService) Subscribe(buffer int) *usecase.Subscription {
	return s.hub.subscribe(buffer)
}

func (s *chatService) currentSession() (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return s.session, nil
}

func (s *chatService) resetLocked() {
	s.state = usecase.ChatStateClosed
	s.conversations = nil
	s.active = nil
	s.clearMessagesLocked()
	s.drafts = make(map[string]string)
	s.sending = make(map[string]bool)
	s.view++
}

func (s *chatService) clearMessagesLocked() {
	s.messages = nil
	s.absorbed = make(map[string]bool)
}

func (s *chatService) matchesActiveLocked(msg *entity.Message) bool {
	if s.state != usecase.ChatStateConversation || s.active == nil {
		return false
	}

	if msg.ConversationID != "" {
		return msg.ConversationID == s.active.ID
	}

	return msg.SenderID == s.active.Counterparty.ID
}

func (s *chatService) appendLocked(msg *entity.Message) {
	var result mergeResult
	s.messages, result = s.dedup.merge(s.messages, s.absorbed, msg)

	switch result {
	case mergeAppended, mergeReplaced:
		s.publishLocked(usecase.Event{
			Kind:           usecase.EventMessageAppended,
			ConversationID: msg.ConversationID,
			Message:        msg,
		})
	case mergeDuplicate:
		s.logger.Debug("[Chat] Skipping duplicate message",
			slog.String("conversation_id", msg.ConversationID),
			slog.String("message_id", msg.ID),
		)
	}
}

// touchLocked records msg as the latest message of its conversation and moves it to the top.
func (s *chatService) touchLocked(msg *entity.Message) {
	i := s.indexLocked(msg.ConversationID)
	if i < 0 {
		return
	}

	updated := *s.conversations[i]
	updated.LastMessage = msg
	if msg.CreatedAt.After(updated.UpdatedAt) {
		updated.UpdatedAt = msg.CreatedAt
	}

	s.conversations = slices.Delete(s.conversations, i, i+1)
	s.conversations = slices.Insert(s.conversations, 0, &updated)
	if s.active != nil && s.active.ID == updated.ID {
		s.active = &updated
	}

	s.publishLocked(usecase.Event{Kind: usecase.EventConversationsChanged, ConversationID: updated.ID})
}

func (s *chatService) indexLocked(conversationID string) int {
	return slices.IndexFunc(s.conversations, func(c *entity.Conversation) bool {
		return c.ID == conversationID
	})
}

func (s *chatService) findByCounterpartyLocked(counterpartyID string) *entity.Conversation {
	if s.active != nil && s.active.Counterparty.ID == counterpartyID {
		return s.active
	}

	i := slices.IndexFunc(s.conversations, func(c *entity.Conversation) bool {
		return c.Counterparty.ID == counterpartyID
	})
	if i < 0 {
		return nil
	}

	return s.conversations[i]
}

func (s *chatService) senderNameLocked(msg *entity.Message) string {
	for _, c := range s.conversations {
		if c.ID == msg.ConversationID || c.Counterparty.ID == msg.SenderID {
			if c.Counterparty.FullName != "" {
				return c.Counterparty.FullName
			}
		}
	}

	return "a buyer or seller"
}

func (s *chatService) publishStateLocked() {
	ev := usecase.Event{Kind: usecase.EventStateChanged, State: s.state}
	if s.active != nil {
		ev.ConversationID = s.active.ID
	}
	s.publishLocked(ev)
}

// publishLocked is called with mu held. The hub never blocks.
func (s *chatService) publishLocked(ev usecase.Event) {
	s.hub.publish(ev)
}

func (s *chatService) publish(ev usecase.Event) {
	s.hub.publish(ev)
}

// fail publishes err as a user-visible notification and returns it.
func (s *chatService) fail(err error) error {
	appErr := domainerrors.AsAppError(err)
	s.publish(usecase.Event{Kind: usecase.EventNotification, Notification: appErr.Message()})

	return err
}
