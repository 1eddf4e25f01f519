package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is the flow every object and scene goes through: Init once,
// Update and Draw every frame, and Destroy to release what it owns.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// children keeps child objects in insertion order with an index by id.
type children struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildren() *children {
	return &children{
		idxIDObjects: make(map[string]GameObject),
		ordered:      make([]GameObject, 0),
	}
}

func (c *children) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.ordered = append(c.ordered, child)
}

func (c *children) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *children) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing; lower is drawn first.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildren(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

// InitTree initializes an object and then its children.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of an object and then the object itself.
// Every object is destroyed even if one of them fails; the first error wins.
func DestroyTree(root GameObject) error {
	var firstErr error
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := root.Destroy(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to destroy object %s: %v", root.GetID(), err)
	}
	return firstErr
}

func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
