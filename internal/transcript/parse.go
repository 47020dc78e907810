// Package transcript turns raw transcript text into a conversation and
// fetches transcripts from remote services.
package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"synapse-go/internal/types"
)

// TurnInterval is the synthetic gap between parsed turns, in milliseconds.
const TurnInterval = 1000

var speakerAliases = map[string]types.Speaker{
	"user":         types.SpeakerUser,
	"usuario":      types.SpeakerUser,
	"usuário":      types.SpeakerUser,
	"trainee":      types.SpeakerUser,
	"vendedor":     types.SpeakerUser,
	"participante": types.SpeakerUser,
	"gestor":       types.SpeakerUser,
	"ai":           types.SpeakerAI,
	"ia":           types.SpeakerAI,
	"assistant":    types.SpeakerAI,
	"assistente":   types.SpeakerAI,
	"bot":          types.SpeakerAI,
	"cliente":      types.SpeakerAI,
	"customer":     types.SpeakerAI,
}

// Parse reads "speaker: content" lines. Lines without a known speaker
// prefix continue the previous turn. A body that starts with '[' or '{' is
// decoded as JSON turns instead.
func Parse(text string) (types.Conversation, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return parseJSON([]byte(trimmed))
	}

	var turns []types.Turn
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if speaker, content, ok := splitSpeaker(line); ok {
			turns = append(turns, types.Turn{
				Speaker:   speaker,
				Content:   content,
				Timestamp: int64(len(turns)) * TurnInterval,
			})
			continue
		}
		if len(turns) == 0 {
			return types.Conversation{}, fmt.Errorf("line %d: text before first speaker", n)
		}
		last := &turns[len(turns)-1]
		if last.Content == "" {
			last.Content = line
		} else {
			last.Content += " " + line
		}
	}
	if err := sc.Err(); err != nil {
		return types.Conversation{}, fmt.Errorf("read transcript: %w", err)
	}
	return types.Conversation{Turns: turns}, nil
}

func splitSpeaker(line string) (types.Speaker, string, bool) {
	i := strings.Index(line, ":")
	if i <= 0 {
		return "", "", false
	}
	speaker, ok := speakerAliases[strings.ToLower(strings.TrimSpace(line[:i]))]
	if !ok {
		return "", "", false
	}
	return speaker, strings.TrimSpace(line[i+1:]), true
}

func parseJSON(data []byte) (types.Conversation, error) {
	var conv types.Conversation
	if data[0] == '[' {
		if err := json.Unmarshal(data, &conv.Turns); err != nil {
			return types.Conversation{}, fmt.Errorf("decode transcript turns: %w", err)
		}
	} else if err := json.Unmarshal(data, &conv); err != nil {
		return types.Conversation{}, fmt.Errorf("decode transcript: %w", err)
	}
	if err := Validate(conv); err != nil {
		return types.Conversation{}, err
	}
	return conv, nil
}

// Validate rejects turns whose speaker is neither "user" nor "ai".
func Validate(conv types.Conversation) error {
	for i, t := range conv.Turns {
		if t.Speaker != types.SpeakerUser && t.Speaker != types.SpeakerAI {
			return fmt.Errorf("turn %d: unknown speaker %q", i, t.Speaker)
		}
	}
	return nil
}
