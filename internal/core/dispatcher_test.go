// /internal/core/dispatcher_test.go
package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exobot/internal/feature"
	"exobot/internal/fireforget"
	"exobot/internal/storage"
)

type fakeResponder struct {
	ackErr  error
	editErr error
	edits   []string
}

func (f *fakeResponder) Ack() error { return f.ackErr }

func (f *fakeResponder) Edit(content string) error {
	f.edits = append(f.edits, content)
	return f.editErr
}

type testCommand struct {
	name   string
	module feature.Module
	admin  bool
	run    func(*SlashContext) error
	runs   int
}

func (c *testCommand) Name() string           { return c.name }
func (c *testCommand) Description() string    { return "test command" }
func (c *testCommand) Module() feature.Module { return c.module }
func (c *testCommand) Category() string       { return "test" }
func (c *testCommand) RequireAdmin() bool     { return c.admin }

func (c *testCommand) Run(ctx *SlashContext) error {
	c.runs++
	if c.run != nil {
		return c.run(ctx)
	}
	return nil
}

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	store, err := storage.New(context.Background(), filepath.Join(t.TempDir(), "exobot.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return &Deps{
		Storage:  store,
		Features: feature.NewRegistry(),
		Topics:   feature.NewTopicCache(),
		Runner:   &fireforget.Runner{},
	}
}

func newTestContext(deps *Deps, r Responder) *SlashContext {
	return &SlashContext{
		Responder: r,
		Deps:      deps,
		GuildID:   "guild",
		ChannelID: "chan",
		UserID:    "user",
	}
}

func TestDispatchAckFailureDropsCommand(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{name: "drop-me"}
	RegisterCommand(cmd)

	r := &fakeResponder{ackErr: errors.New("interaction expired")}
	NewDispatcher(deps).Dispatch("drop-me", newTestContext(deps, r))

	assert.Zero(t, cmd.runs, "handler must not run without an acknowledgement")
	assert.Empty(t, r.edits, "no response goes out for a dropped command")
}

func TestDispatchRunsAndFallsBackToDone(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{name: "quiet"}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("quiet", newTestContext(deps, r))

	assert.Equal(t, 1, cmd.runs)
	assert.Equal(t, []string{"Done."}, r.edits)
}

func TestDispatchHandlerReplyIsFinal(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{
		name: "chatty",
		run:  func(ctx *SlashContext) error { return ctx.Reply("all set") },
	}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("chatty", newTestContext(deps, r))

	assert.Equal(t, []string{"all set"}, r.edits, "exactly one final response")
}

func TestDispatchHandlerErrorGetsGenericReply(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{
		name: "broken",
		run:  func(ctx *SlashContext) error { return errors.New("boom") },
	}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("broken", newTestContext(deps, r))

	require.Len(t, r.edits, 1)
	assert.Contains(t, r.edits[0], "Something went wrong")
}

func TestDispatchHandlerPanicIsIsolated(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{
		name: "explosive",
		run:  func(ctx *SlashContext) error { panic("kaboom") },
	}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	assert.NotPanics(t, func() {
		NewDispatcher(deps).Dispatch("explosive", newTestContext(deps, r))
	})
	require.Len(t, r.edits, 1)
	assert.Contains(t, r.edits[0], "Something went wrong")
}

func TestDispatchModuleGate(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{name: "gated", module: feature.ModuleModeration}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("gated", newTestContext(deps, r))

	assert.Zero(t, cmd.runs)
	require.Len(t, r.edits, 1)
	assert.Contains(t, r.edits[0], "disabled")

	deps.Features.SetModules("guild", []feature.Module{feature.ModuleModeration})
	r2 := &fakeResponder{}
	NewDispatcher(deps).Dispatch("gated", newTestContext(deps, r2))
	assert.Equal(t, 1, cmd.runs)
}

func TestDispatchAdminGate(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{name: "staff-only", admin: true}
	RegisterCommand(cmd)

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("staff-only", newTestContext(deps, r))

	assert.Zero(t, cmd.runs)
	require.Len(t, r.edits, 1)
	assert.Contains(t, r.edits[0], "administrator")

	ctx := newTestContext(deps, &fakeResponder{})
	ctx.Admin = true
	NewDispatcher(deps).Dispatch("staff-only", ctx)
	assert.Equal(t, 1, cmd.runs)
}

func TestDispatchCustomCommandFallback(t *testing.T) {
	deps := newTestDeps(t)
	require.NoError(t, deps.Storage.UpsertCustomCommand("guild", "greet", "Hello from the guild!", "admin", time.Now()))

	r := &fakeResponder{}
	NewDispatcher(deps).Dispatch("greet", newTestContext(deps, r))
	assert.Equal(t, []string{"Hello from the guild!"}, r.edits)

	r2 := &fakeResponder{}
	NewDispatcher(deps).Dispatch("no-such-command", newTestContext(deps, r2))
	assert.Equal(t, []string{"Unknown command."}, r2.edits)
}

func TestWithGuildOnly(t *testing.T) {
	deps := newTestDeps(t)
	cmd := &testCommand{name: "guildish"}

	ctx := newTestContext(deps, &fakeResponder{})
	ctx.GuildID = ""

	err := ApplyMiddlewares(cmd, WithGuildOnly()).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, cmd.runs)
	assert.True(t, ctx.Replied())
}
