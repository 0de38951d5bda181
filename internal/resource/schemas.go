package resource

// NewsCategories is the recognized category set for news items. Anything the
// backend returns outside this set edits as Other plus a custom value.
var NewsCategories = []string{
	"Club News",
	"Events",
	"MEMBER'S CAR OF THE MONTH",
	CategoryOther,
}

// Schemas lists every manageable resource, in dashboard order.
var Schemas = []Schema{
	{
		Name:     "events",
		Title:    "Events",
		Singular: "event",
		Path:     "events",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "date", Label: "Date", Kind: FieldDate, Required: true},
			{Name: "description", Label: "Description", Kind: FieldTextArea, Required: true},
		},
		Image:      SingleImage,
		ImageField: "image",
		Updatable:  true,
	},
	{
		Name:     "galleries",
		Title:    "Galleries",
		Singular: "gallery",
		Path:     "galleries",
		Fields: []Field{
			{Name: "event", Label: "Event", Kind: FieldText, Required: true},
			{Name: "description", Label: "Description", Kind: FieldTextArea, Required: true},
		},
		Image:      MultiImage,
		ImageField: "images",
		Updatable:  true,
	},
	{
		Name:     "news",
		Title:    "News",
		Singular: "news item",
		Path:     "news",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "date", Label: "Date", Kind: FieldDate, Required: true},
			{Name: "description", Label: "Description", Kind: FieldTextArea, Required: true},
			{Name: "category", Label: "Category", Kind: FieldCategory, Required: true},
		},
		Image:      SingleImage,
		ImageField: "image",
		Categories: NewsCategories,
		Updatable:  true,
	},
	{
		Name:     "products",
		Title:    "Products",
		Singular: "product",
		Path:     "products",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "price", Label: "Price", Kind: FieldText, Required: true},
		},
		Image:      SingleImage,
		ImageField: "image",
		Updatable:  true,
	},
	{
		Name:     "team-members",
		Title:    "Team Members",
		Singular: "team member",
		Path:     "team-members",
		Fields: []Field{
			{Name: "firstName", Label: "First name", Kind: FieldText, Required: true},
			{Name: "secondName", Label: "Second name", Kind: FieldText, Required: true},
			{Name: "role", Label: "Role", Kind: FieldText, Required: true},
		},
		Image:      SingleImage,
		ImageField: "image",
		Updatable:  true,
	},
	{
		Name:       "admins",
		Title:      "Admin Users",
		Singular:   "admin user",
		Path:       "admins",
		CreatePath: "admins/register",
		Fields: []Field{
			{Name: "username", Label: "Username", Kind: FieldText, Required: true},
			{Name: "password", Label: "Password", Kind: FieldPassword, Required: true},
		},
		Image:     NoImage,
		Updatable: false,
	},
}

// SchemaByName looks a schema up by its URL segment.
func SchemaByName(name string) (Schema, bool) {
	for _, s := range Schemas {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}
