package systems

import (
	"fmt"

	"my-game/ecs"
)

// MessageLog stores recent game messages for the debug overlay
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message with a specific type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}

// Listen records player and map events in the log
func (ml *MessageLog) Listen(world *ecs.World) {
	em := world.GetEventManager()
	em.Subscribe(EventPlayerStep, func(e ecs.Event) {
		step := e.(PlayerStepEvent)
		ml.Add(fmt.Sprintf("Player stepped %s to %.0f,%.0f", step.Facing, step.ToX, step.ToY))
	})
	em.Subscribe(EventPlayerIdle, func(e ecs.Event) {
		idle := e.(PlayerIdleEvent)
		ml.AddTyped(fmt.Sprintf("Player idle facing %s", idle.Facing), MessageTypeEnvironment)
	})
	em.Subscribe(EventMapGenerated, func(e ecs.Event) {
		gen := e.(MapGeneratedEvent)
		ml.AddTyped(fmt.Sprintf("Map generated: %d tiles, %d per row", gen.Tiles, gen.RowLength), MessageTypeSystem)
	})
}
