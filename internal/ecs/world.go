package ecs

import "github.com/younwookim/chasearena/internal/domain/entity"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps, the spawn order and the arena description.
// Entities are never removed: destroying one only tags it, so the order
// slice stays stable for the lifetime of the world.
type World struct {
	nextID EntityID
	order  []EntityID
	walls  []EntityID

	// Components
	Kind        map[EntityID]Kind
	Position    map[EntityID]entity.Point
	Velocity    map[EntityID]Velocity
	Size        map[EntityID]int
	Facing      map[EntityID]entity.Direction
	PursuerData map[EntityID]Pursuer
	PlayerData  map[EntityID]Player
	Blink       map[EntityID]int

	// Tags
	IsDestroyed map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID

	// Arena
	Width       int
	Height      int
	HouseExit   entity.Point
	HouseDoor   entity.Point
	PlayerSpawn entity.Point

	// Started is set by the player's first accepted move and cleared on
	// every death. Pursuers stay idle while it is false.
	Started bool
}

// NewWorld creates a new empty world for an arena of the given pixel size
func NewWorld(width, height int) *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Kind:        make(map[EntityID]Kind),
		Position:    make(map[EntityID]entity.Point),
		Velocity:    make(map[EntityID]Velocity),
		Size:        make(map[EntityID]int),
		Facing:      make(map[EntityID]entity.Direction),
		PursuerData: make(map[EntityID]Pursuer),
		PlayerData:  make(map[EntityID]Player),
		Blink:       make(map[EntityID]int),
		IsDestroyed: make(map[EntityID]struct{}),
		Width:       width,
		Height:      height,
	}
}

// NewEntity returns a new unique entity ID and appends it to the spawn order
func (w *World) NewEntity(kind Kind) EntityID {
	id := w.nextID
	w.nextID++
	w.order = append(w.order, id)
	w.Kind[id] = kind
	if kind.IsWall() {
		w.walls = append(w.walls, id)
	}
	return id
}

// Entities returns every entity in spawn order, destroyed ones included.
// The slice is owned by the world and must not be modified.
func (w *World) Entities() []EntityID {
	return w.order
}

// Exists checks if an entity was ever created in this world
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Kind[id]
	return ok
}

// Destroy marks an entity as destroyed. It stays in the spawn order.
func (w *World) Destroy(id EntityID) {
	if !w.Exists(id) {
		return
	}
	w.IsDestroyed[id] = struct{}{}
}

// Destroyed reports whether the entity has been destroyed
func (w *World) Destroyed(id EntityID) bool {
	_, ok := w.IsDestroyed[id]
	return ok
}

// Live reports whether the entity exists and is not destroyed
func (w *World) Live(id EntityID) bool {
	return w.Exists(id) && !w.Destroyed(id)
}

// Hitbox returns the entity's bounding square in world pixels
func (w *World) Hitbox(id EntityID) entity.Rect {
	return entity.Square(w.Position[id], w.Size[id])
}

// CountLive returns the number of live entities of the given kinds
func (w *World) CountLive(kinds ...Kind) int {
	n := 0
	for _, id := range w.order {
		if w.Destroyed(id) {
			continue
		}
		for _, k := range kinds {
			if w.Kind[id] == k {
				n++
				break
			}
		}
	}
	return n
}

// Pursuers returns the live pursuers in spawn order
func (w *World) Pursuers() []EntityID {
	ids := make([]EntityID, 0, 4)
	for _, id := range w.order {
		if w.Kind[id] == KindPursuer && !w.Destroyed(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// FindPursuer returns the first live pursuer of the given archetype
func (w *World) FindPursuer(a Archetype) (EntityID, bool) {
	for _, id := range w.order {
		if w.Kind[id] != KindPursuer || w.Destroyed(id) {
			continue
		}
		if w.PursuerData[id].Archetype == a {
			return id, true
		}
	}
	return 0, false
}

func (w *World) createStatic(kind Kind, x, y, size int) EntityID {
	id := w.NewEntity(kind)
	w.Position[id] = entity.Point{X: x, Y: y}
	w.Size[id] = size
	return id
}

// CreateWall creates a wall occupying the cell at (x, y)
func (w *World) CreateWall(x, y int) EntityID {
	return w.createStatic(KindWall, x, y, WallSize)
}

// CreateHouseWall creates a house wall occupying the cell at (x, y)
func (w *World) CreateHouseWall(x, y int) EntityID {
	return w.createStatic(KindHouseWall, x, y, WallSize)
}

// CreatePellet creates a pellet for the cell at (x, y)
func (w *World) CreatePellet(x, y int) EntityID {
	return w.createStatic(KindPellet, x+PelletOffset, y+PelletOffset, PelletSize)
}

// CreatePowerPellet creates a power pellet for the cell at (x, y)
func (w *World) CreatePowerPellet(x, y int) EntityID {
	id := w.createStatic(KindPowerPellet, x, y, PowerPelletSize)
	w.Blink[id] = 0
	return id
}

// CreatePlayer creates the player entity. The spawn point doubles as the respawn point.
func (w *World) CreatePlayer(x, y int) EntityID {
	id := w.NewEntity(KindPlayer)

	w.Position[id] = entity.Point{X: x, Y: y}
	w.Velocity[id] = Velocity{}
	w.Size[id] = PlayerSize
	w.Facing[id] = entity.DirRight
	w.PlayerData[id] = Player{Lives: StartingLives}

	w.PlayerID = id
	w.PlayerSpawn = entity.Point{X: x, Y: y}
	return id
}

// CreatePursuer creates a pursuer in the House state
func (w *World) CreatePursuer(x, y int, archetype Archetype) EntityID {
	id := w.NewEntity(KindPursuer)

	w.Position[id] = entity.Point{X: x, Y: y}
	w.Velocity[id] = Velocity{}
	w.Size[id] = PursuerSize
	w.Facing[id] = entity.DirRight
	w.PursuerData[id] = Pursuer{Archetype: archetype, State: StateHouse}
	return id
}

// EntitySnapshot is a plain copy of one entity's components
type EntitySnapshot struct {
	ID        EntityID
	Kind      Kind
	Position  entity.Point
	Size      int
	Velocity  Velocity
	Facing    entity.Direction
	Destroyed bool
	Pursuer   Pursuer
	Player    Player
	Blink     int
}

// Snapshot copies every entity's state in spawn order
func (w *World) Snapshot() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, EntitySnapshot{
			ID:        id,
			Kind:      w.Kind[id],
			Position:  w.Position[id],
			Size:      w.Size[id],
			Velocity:  w.Velocity[id],
			Facing:    w.Facing[id],
			Destroyed: w.Destroyed(id),
			Pursuer:   w.PursuerData[id],
			Player:    w.PlayerData[id],
			Blink:     w.Blink[id],
		})
	}
	return out
}
