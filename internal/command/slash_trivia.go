// /internal/command/slash_trivia.go
package command

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type TriviaCommand struct{}

var triviaQuestions = []struct {
	Question string
	Answer   string
}{
	{"What is the largest planet in the solar system?", "Jupiter"},
	{"How many bits are in a byte?", "Eight"},
	{"What year did the first moon landing happen?", "1969"},
	{"Which language is this bot written in?", "Go"},
	{"What does HTTP stand for?", "HyperText Transfer Protocol"},
}

func (c *TriviaCommand) Name() string           { return "trivia" }
func (c *TriviaCommand) Description() string    { return "Ask a random trivia question" }
func (c *TriviaCommand) Module() feature.Module { return feature.ModuleGaming }
func (c *TriviaCommand) Category() string       { return "🎲 Gaming" }
func (c *TriviaCommand) RequireAdmin() bool     { return false }

func (c *TriviaCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *TriviaCommand) Run(ctx *core.SlashContext) error {
	q := triviaQuestions[rand.Intn(len(triviaQuestions))]
	return ctx.Reply(fmt.Sprintf("❓ %s\n||%s||", q.Question, q.Answer))
}

func init() {
	core.RegisterCommand(&TriviaCommand{})
}
