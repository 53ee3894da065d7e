package entity

import (
	"fmt"
	"sort"
	"strings"

	c "github.com/Luis23345432/Ingesta-Hotel2/constants"
)

// plain returns a pass-through column whose source attribute has the same name.
func plain(name string, typ string) Column {
	return Column{Name: name, Source: name, Type: typ, Rule: RuleNone}
}

func text(name string) Column {
	return Column{Name: name, Source: name, Type: c.ColumnTypeString, Rule: RuleStripNewlines}
}

var (
	Users = Spec{
		Name:                "users",
		Table:               "users",
		Folder:              "usuarios",
		FileStem:            "usuarios",
		DatabaseDescription: "Glue database for hotel users.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			plain("user_id", c.ColumnTypeString),
			plain("nombre", c.ColumnTypeString),
			plain("email", c.ColumnTypeString),
			plain("password_hash", c.ColumnTypeString),
			plain("fecha_registro", c.ColumnTypeTimestamp),
		},
	}

	Services = Spec{
		Name:                "services",
		Table:               "services",
		Folder:              "services",
		DatabaseDescription: "Glue database for hotel services.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			{Name: "service_id", Source: "service_id", ListSource: "service_ids", Type: c.ColumnTypeString, Rule: RuleListFlatten},
			plain("service_category", c.ColumnTypeString),
			plain("service_name", c.ColumnTypeString),
			text("descripcion"),
			plain("precio", c.ColumnTypeString),
		},
	}

	Rooms = Spec{
		Name:                "rooms",
		Table:               "rooms",
		Folder:              "rooms",
		DatabaseDescription: "Glue database for hotel rooms.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			plain("room_id", c.ColumnTypeString),
			plain("room_name", c.ColumnTypeString),
			plain("max_persons", c.ColumnTypeInt),
			plain("room_type", c.ColumnTypeString),
			plain("price_per_night", c.ColumnTypeString),
			text("description"),
			plain("availability", c.ColumnTypeString),
			plain("created_at", c.ColumnTypeTimestamp),
			plain("image", c.ColumnTypeString),
		},
	}

	Reservations = Spec{
		Name:                "reservations",
		Table:               "reservations",
		Folder:              "reservations",
		DatabaseDescription: "Glue database for hotel reservations.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			plain("reservation_id", c.ColumnTypeString),
			plain("user_id", c.ColumnTypeString),
			plain("room_id", c.ColumnTypeString),
			{Name: "service_ids", Source: "service_ids", Type: c.ColumnTypeString, Rule: RuleListJoin},
			plain("start_date", c.ColumnTypeString),
			plain("end_date", c.ColumnTypeString),
			plain("status", c.ColumnTypeString),
		},
	}

	Comments = Spec{
		Name:                "comments",
		Table:               "comments",
		Folder:              "comments",
		DatabaseDescription: "Glue database for hotel comments.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			plain("comment_id", c.ColumnTypeString),
			plain("room_id", c.ColumnTypeString),
			plain("user_id", c.ColumnTypeString),
			text("comment_text"),
			plain("created_at", c.ColumnTypeTimestamp),
		},
	}

	Payments = Spec{
		Name:                "payments",
		Table:               "payments",
		Folder:              "payments",
		DatabaseDescription: "Glue database for hotel payments.",
		Columns: []Column{
			plain("tenant_id", c.ColumnTypeString),
			plain("payment_id", c.ColumnTypeString),
			plain("reservation_id", c.ColumnTypeString),
			plain("monto_pago", c.ColumnTypeDecimal),
			plain("created_at", c.ColumnTypeTimestamp),
			plain("status", c.ColumnTypeString),
		},
	}
)

// all is in job order.
var all = []Spec{Users, Services, Rooms, Reservations, Comments, Payments}

var aliases = map[string]string{
	"usuarios":    "users",
	"user":        "users",
	"service":     "services",
	"room":        "rooms",
	"reservation": "reservations",
	"comment":     "comments",
	"payment":     "payments",
}

// Aliases returns a copy of the alternative entity names mapped to their canonical name.
func Aliases() map[string]string {
	retval := make(map[string]string, len(aliases))
	for k, v := range aliases {
		retval[k] = v
	}
	return retval
}

// All returns every entity spec in job order.
func All() []Spec {
	retval := make([]Spec, len(all))
	copy(retval, all)
	return retval
}

// Names returns the entity names in job order.
func Names() []string {
	retval := make([]string, 0, len(all))
	for _, s := range all {
		retval = append(retval, s.Name)
	}
	return retval
}

// Lookup finds a spec by name or alias (case insensitive).
func Lookup(name string) (Spec, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[n]; ok {
		n = a
	}
	for _, s := range all {
		if s.Name == n {
			return s, nil
		}
	}
	known := Names()
	sort.Strings(known)
	return Spec{}, fmt.Errorf("unknown entity %q (expected one of %v)", name, strings.Join(known, ", "))
}
