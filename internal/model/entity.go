package model

// Entity is anything stored in a collection under a unique id.
type Entity interface {
	EntityID() string
}

// ProjectScoped is an entity owned by exactly one project.
type ProjectScoped interface {
	Entity
	ParentProjectID() string
}
