// /internal/moderate/pipeline_test.go
package moderate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exobot/internal/config"
	"exobot/internal/feature"
	"exobot/internal/fireforget"
)

type fakeActions struct {
	mu       sync.Mutex
	deleted  []string
	replies  []string
	dms      []string
	timeouts []string
}

func (f *fakeActions) Delete(channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeActions) Reply(channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, content)
	return nil
}

func (f *fakeActions) DirectMessage(userID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dms = append(f.dms, userID)
	return nil
}

func (f *fakeActions) Timeout(guildID, userID string, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeouts = append(f.timeouts, userID)
	return nil
}

type fakeStore struct {
	mu       sync.Mutex
	warnings []string
	awards   []string
	audits   []string
}

func (f *fakeStore) AddWarning(guildID, userID, channelID, reason string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warnings = append(f.warnings, userID)
	return nil
}

func (f *fakeStore) IncrementBalance(guildID, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awards = append(f.awards, userID)
	return amount, nil
}

func (f *fakeStore) AppendAudit(guildID, action, actorID, detail string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audits = append(f.audits, action)
	return nil
}

type fakeChecker struct {
	mu      sync.Mutex
	onTopic bool
	err     error
	calls   int
}

func (f *fakeChecker) IsOnTopic(ctx context.Context, content, topic string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.onTopic, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		ForbiddenWords:    []string{"contraband"},
		SpamWindow:        60 * time.Second,
		SpamThreshold:     5,
		CapsRatio:         0.70,
		CapsMinLength:     10,
		MentionLimit:      5,
		WarningThreshold:  3,
		TimeoutDuration:   60 * time.Second,
		CurrencyCooldown:  60 * time.Second,
		ClassifierTimeout: 5 * time.Second,
	}
}

type pipelineFixture struct {
	pipeline *Pipeline
	actions  *fakeActions
	store    *fakeStore
	runner   *fireforget.Runner
	features *feature.Registry
	topics   *feature.TopicCache
}

func newFixture(cfg *config.Config, checker TopicChecker) *pipelineFixture {
	f := &pipelineFixture{
		actions:  &fakeActions{},
		store:    &fakeStore{},
		runner:   &fireforget.Runner{},
		features: feature.NewRegistry(),
		topics:   feature.NewTopicCache(),
	}
	f.pipeline = New(cfg, f.features, f.topics, f.actions, f.store, checker, f.runner)
	return f
}

func message(content string) Message {
	return Message{
		GuildID:   "guild",
		ChannelID: "chan",
		MessageID: "msg",
		AuthorID:  "user",
		Content:   content,
	}
}

func TestPipelineIgnoresBots(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration})

	msg := message("contraband")
	msg.AuthorBot = true
	f.pipeline.Process(msg)
	f.runner.Wait()

	assert.Empty(t, f.actions.deleted)
	assert.Empty(t, f.actions.replies)
}

func TestPipelineDenylistTrip(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration})

	f.pipeline.Process(message("selling CONTRABAND cheap"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1)
	require.Len(t, f.actions.replies, 1)
	assert.Contains(t, f.actions.replies[0], "forbidden word")
	assert.Equal(t, []string{"user"}, f.store.warnings)
}

func TestPipelineSpamTripsAboveThreshold(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	f.pipeline.now = func() time.Time { return clock }

	for i := 0; i < 5; i++ {
		clock = base.Add(time.Duration(i) * time.Second)
		f.pipeline.Process(message(fmt.Sprintf("hello %d", i)))
	}
	f.runner.Wait()
	assert.Empty(t, f.actions.deleted, "five messages in a minute are fine")

	clock = base.Add(5 * time.Second)
	f.pipeline.Process(message("hello again"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1, "sixth message in a minute trips")
	assert.Equal(t, []string{"user"}, f.actions.dms, "spam offenders are told privately")
	assert.Empty(t, f.actions.replies, "no channel reply for spam")
	assert.Empty(t, f.store.warnings, "spam does not persist a warning row")
}

func TestPipelineCapsTripRepliesOnly(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration})

	f.pipeline.Process(message("STOP SHOUTING AT EVERYONE"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1)
	require.Len(t, f.actions.replies, 1)
	assert.Contains(t, f.actions.replies[0], "capital letters")
	assert.Empty(t, f.actions.dms)
	assert.Empty(t, f.store.warnings, "caps trips do not persist a warning row")
}

func TestPipelineTripSkipsAward(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration, feature.ModuleEconomy})

	f.pipeline.Process(message("contraband"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1)
	assert.Empty(t, f.store.awards, "a tripped message earns nothing")
}

func TestPipelineModerationOffEconomyOn(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleEconomy})

	f.pipeline.Process(message("contraband everywhere"))
	f.runner.Wait()

	assert.Empty(t, f.actions.deleted, "moderation is off")
	assert.Equal(t, []string{"user"}, f.store.awards, "economy still runs")
}

func TestPipelineAwardHonorsCooldown(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleEconomy})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	f.pipeline.now = func() time.Time { return clock }

	f.pipeline.Process(message("one"))
	clock = base.Add(30 * time.Second)
	f.pipeline.Process(message("two"))
	clock = base.Add(2 * time.Minute)
	f.pipeline.Process(message("three"))
	f.runner.Wait()

	assert.Len(t, f.store.awards, 2, "second message inside the cooldown earns nothing")
}

func TestPipelineEscalatesToTimeout(t *testing.T) {
	f := newFixture(testConfig(), &fakeChecker{onTopic: false})
	f.features.SetModules("guild", []feature.Module{feature.ModuleHelix})
	f.topics.Set("chan", "gardening")

	for i := 0; i < 3; i++ {
		f.pipeline.Process(message("let's talk about trains"))
		f.runner.Wait()
	}

	require.Len(t, f.actions.timeouts, 1)
	assert.Equal(t, "user", f.actions.timeouts[0])
	assert.Len(t, f.actions.dms, 1)

	// Counter survives the sanction: the next verdict is warning four and
	// sanctions again.
	f.pipeline.Process(message("still trains"))
	f.runner.Wait()
	assert.Len(t, f.actions.timeouts, 2)
	assert.Equal(t, 4, f.pipeline.WarningCount("user", "chan"))
}

func TestPipelineResetOnTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.ResetWarningsOnTimeout = true
	f := newFixture(cfg, &fakeChecker{onTopic: false})
	f.features.SetModules("guild", []feature.Module{feature.ModuleHelix})
	f.topics.Set("chan", "gardening")

	for i := 0; i < 3; i++ {
		f.pipeline.Process(message("let's talk about trains"))
		f.runner.Wait()
	}
	require.Len(t, f.actions.timeouts, 1)

	f.pipeline.Process(message("still trains"))
	f.runner.Wait()
	assert.Len(t, f.actions.timeouts, 1, "counter was reset, warning one again")
	assert.Equal(t, 1, f.pipeline.WarningCount("user", "chan"))
}

func TestPipelineTripStillClassifies(t *testing.T) {
	checker := &fakeChecker{onTopic: true}
	f := newFixture(testConfig(), checker)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration, feature.ModuleHelix})
	f.topics.Set("chan", "gardening")

	f.pipeline.Process(message("contraband tulip bulbs"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1, "denylist trips")
	assert.Equal(t, 1, checker.calls, "classification runs regardless of the trip")
}

func TestPipelineSecurityAuditsMessages(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleSecurity})

	f.pipeline.Process(message("a perfectly fine message"))
	f.runner.Wait()

	assert.Equal(t, []string{"message"}, f.store.audits)
}

func TestPipelineTripSkipsMessageAudit(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration, feature.ModuleSecurity})

	f.pipeline.Process(message("contraband"))
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1)
	assert.NotContains(t, f.store.audits, "message", "a removed message is not mirrored")
}

func TestPipelineOffTopicEscalates(t *testing.T) {
	f := newFixture(testConfig(), &fakeChecker{onTopic: false})
	f.features.SetModules("guild", []feature.Module{feature.ModuleHelix})
	f.topics.Set("chan", "gardening")

	f.pipeline.Process(message("let's talk about trains"))
	f.runner.Wait()

	require.Len(t, f.actions.replies, 1)
	assert.Contains(t, f.actions.replies[0], "topic")
	assert.Empty(t, f.actions.deleted, "off-topic warns but does not delete")
}

func TestPipelineClassifierErrorIsPermissive(t *testing.T) {
	f := newFixture(testConfig(), &fakeChecker{err: errors.New("model down")})
	f.features.SetModules("guild", []feature.Module{feature.ModuleHelix})
	f.topics.Set("chan", "gardening")

	f.pipeline.Process(message("anything at all"))
	f.runner.Wait()

	assert.Empty(t, f.actions.replies)
	assert.Equal(t, 0, f.pipeline.WarningCount("user", "chan"))
}

func TestPipelineNoTopicNoClassification(t *testing.T) {
	checker := &fakeChecker{onTopic: false}
	f := newFixture(testConfig(), checker)
	f.features.SetModules("guild", []feature.Module{feature.ModuleHelix})

	f.pipeline.Process(message("anything"))
	f.runner.Wait()

	assert.Empty(t, f.actions.replies)
}

func TestPipelineMentionFlood(t *testing.T) {
	f := newFixture(testConfig(), nil)
	f.features.SetModules("guild", []feature.Module{feature.ModuleModeration})

	msg := message("hey everyone")
	msg.Mentions = []string{"a", "b", "c", "d", "e", "f"}
	f.pipeline.Process(msg)
	f.runner.Wait()

	require.Len(t, f.actions.deleted, 1)
	assert.Contains(t, f.actions.replies[0], "mentioning too many users")
}
