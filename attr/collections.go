package attr

// Map holds an entity's named attributes. Keys are unique and order carries
// no meaning. The owning entity adds, removes and replaces entries.
type Map map[string]Attribute

// List holds positional attributes, such as the same-named attribute
// collected from several entities being merged.
type List []Attribute
