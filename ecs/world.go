package ecs

import (
	"fmt"
	"slices"
	"time"
)

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Parent -> children, in spawn order
	children map[EntityID][]EntityID

	systems        []System
	startupSystems []StartupSystem

	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager

	nextEntityID EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		children:     make(map[EntityID][]EntityID),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextEntityID++
	entity := newEntity(w.nextEntityID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity, its components and all of its descendants
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for _, child := range slices.Clone(w.children[entityID]) {
		w.RemoveEntity(child)
	}
	delete(w.children, entityID)

	if entity.Parent != 0 {
		w.detach(entity.Parent, entityID)
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(entityID, componentID)
	return ok
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// SetParent attaches child under parent. Re-parenting moves the child.
func (w *World) SetParent(child, parent EntityID) {
	c, ok := w.entities[child]
	if !ok {
		return
	}
	if _, ok := w.entities[parent]; !ok {
		return
	}
	if c.Parent != 0 {
		w.detach(c.Parent, child)
	}
	c.Parent = parent
	w.children[parent] = append(w.children[parent], child)
}

// Children returns the direct children of an entity in the order they were attached
func (w *World) Children(parent EntityID) []EntityID {
	return slices.Clone(w.children[parent])
}

func (w *World) detach(parent, child EntityID) {
	kids := w.children[parent]
	if i := slices.Index(kids, child); i >= 0 {
		w.children[parent] = slices.Delete(kids, i, i+1)
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}

// AddSystem adds a per-frame system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// AddStartupSystem adds a system that runs once from Startup
func (w *World) AddStartupSystem(system StartupSystem) {
	w.startupSystems = append(w.startupSystems, system)
}

// Startup runs the startup systems in registration order and stops at the first error
func (w *World) Startup() error {
	for i, system := range w.startupSystems {
		if err := system.Startup(w); err != nil {
			return fmt.Errorf("startup system %d: %w", i, err)
		}
	}
	return nil
}

// Update updates all systems in the world
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by id
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortEntities(entities)
	return entities
}

// MustSingle returns the only entity carrying tag.
// It panics when there is no such entity or more than one.
func (w *World) MustSingle(tag string) *Entity {
	tagged := w.entityTags[tag]
	if len(tagged) != 1 {
		panic(fmt.Sprintf("ecs: expected exactly one %q entity, found %d", tag, len(tagged)))
	}
	for id := range tagged {
		return w.entities[id]
	}
	return nil
}

// GetAllEntities returns a slice of all entities in the world, ordered by id
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortEntities(entities)
	return entities
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Query returns the ids of entities owning every listed component, ordered by id
func (w *World) Query(componentIDs ...ComponentID) []EntityID {
	ids := make([]EntityID, 0)
	for id, componentMap := range w.components {
		matched := true
		for _, cid := range componentIDs {
			if _, ok := componentMap[cid]; !ok {
				matched = false
				break
			}
		}
		if matched {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

func sortEntities(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
