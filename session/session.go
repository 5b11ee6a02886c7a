package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/config"
	"github.com/Global19/powerquery-parser/internal/trace"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/parsegraph"
	"github.com/Global19/powerquery-parser/token"
)

// Session wraps a *parsegraph.Session with a correlation id and optional
// logging/configuration, the entry point a real driver uses. parsegraph
// itself stays dependency-free; this package is where tracing and config
// are allowed to live.
type Session struct {
	id     uuid.UUID
	core   *parsegraph.Session
	logger *slog.Logger
	cfg    *config.Config
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger attaches a logger; operation-boundary tracing is emitted
// through it via internal/trace. A nil logger (the default) disables
// tracing at near-zero cost.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithConfig attaches driver configuration. It never affects core graph
// semantics; it is read back by drivers via Config.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// New returns a fresh session: a new *parsegraph.Session, a freshly
// generated correlation id, and whatever logger/config options were given.
func New(opts ...Option) *Session {
	s := &Session{
		id:   uuid.New(),
		core: parsegraph.NewSession(),
		cfg:  config.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's correlation id, stable for the life of the
// session. Session does not add it to traced log lines itself; a driver
// that seeds the request-id context value from it (see WithRequestID in
// internal/trace) gets it on every traced operation.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the session's configuration (never nil).
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Core returns the underlying *parsegraph.Session for callers that need
// direct access to the bare core API (e.g. to pass it to parsegraph/pqjson).
func (s *Session) Core() *parsegraph.Session {
	return s.core
}

// StartContext opens a new context, tracing the call boundary.
func (s *Session) StartContext(
	ctx context.Context,
	kind ast.Kind,
	tokenIndexStart int,
	startToken token.Token,
	hasStartToken bool,
	parent nodeid.ID,
) (*parsegraph.Context, error) {
	op := trace.Begin(ctx, s.logger, "pqparser.parsegraph.startContext",
		slog.String("kind", kind.String()), slog.String("parent", parent.String()))
	c, err := s.core.StartContext(kind, tokenIndexStart, startToken, hasStartToken, parent)
	op.End(err)
	return c, err
}

// EndContext closes ctx with astNode, tracing the call boundary.
func (s *Session) EndContext(goCtx context.Context, c *parsegraph.Context, astNode *ast.Node) (*parsegraph.Context, error) {
	op := trace.Begin(goCtx, s.logger, "pqparser.parsegraph.endContext",
		slog.String("id", c.ID().String()))
	parent, err := s.core.EndContext(c, astNode)
	op.End(err)
	return parent, err
}

// DeleteContext removes the context named by id, tracing the call boundary.
func (s *Session) DeleteContext(goCtx context.Context, id nodeid.ID) (*parsegraph.Context, error) {
	op := trace.Begin(goCtx, s.logger, "pqparser.parsegraph.deleteContext",
		slog.String("id", id.String()))
	parent, err := s.core.DeleteContext(id)
	op.End(err)
	return parent, err
}

// RootXor delegates to the underlying session's root handle.
func (s *Session) RootXor() (parsegraph.XorNode, bool) {
	return s.core.RootXor()
}

// HasRoot delegates to the underlying session.
func (s *Session) HasRoot() bool {
	return s.core.HasRoot()
}

// ExpectAst delegates to the underlying Node Id Map.
func (s *Session) ExpectAst(id nodeid.ID) (*ast.Node, error) {
	return s.core.IdMap().ExpectAst(id)
}

// ExpectContext delegates to the underlying Node Id Map.
func (s *Session) ExpectContext(id nodeid.ID) (*parsegraph.Context, error) {
	return s.core.IdMap().ExpectContext(id)
}

// ExpectXor delegates to the underlying Node Id Map.
func (s *Session) ExpectXor(id nodeid.ID) (parsegraph.XorNode, error) {
	return s.core.IdMap().ExpectXor(id)
}

// ExpectChildren delegates to the underlying Node Id Map.
func (s *Session) ExpectChildren(id nodeid.ID) ([]nodeid.ID, error) {
	return s.core.IdMap().ExpectChildren(id)
}

// ExpectParentID delegates to the underlying Node Id Map.
func (s *Session) ExpectParentID(id nodeid.ID) (nodeid.ID, error) {
	return s.core.IdMap().ExpectParentID(id)
}

// MaybeAst is the tolerant counterpart to ExpectAst.
func (s *Session) MaybeAst(id nodeid.ID) (*ast.Node, bool) {
	return s.core.MaybeAst(id)
}

// MaybeContext is the tolerant counterpart to ExpectContext.
func (s *Session) MaybeContext(id nodeid.ID) (*parsegraph.Context, bool) {
	return s.core.MaybeContext(id)
}

// MaybeParentID is the tolerant counterpart to ExpectParentID.
func (s *Session) MaybeParentID(id nodeid.ID) (nodeid.ID, bool) {
	return s.core.MaybeParentID(id)
}

// LeafIDs iterates the order-of-closure sequence of closed leaf ids.
func (s *Session) LeafIDs() func(yield func(nodeid.ID) bool) {
	return s.core.IdMap().LeafIDs()
}

// DeepCopy returns an independent speculative session: a deep copy of the
// underlying parsegraph.Session, stamped with a new correlation id so its
// trace lines are distinguishable from the original's. The logger and
// config are shared (they carry no per-parse state).
func (s *Session) DeepCopy() *Session {
	return &Session{
		id:     uuid.New(),
		core:   s.core.DeepCopy(),
		logger: s.logger,
		cfg:    s.cfg,
	}
}
