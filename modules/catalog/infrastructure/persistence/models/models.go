package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Position struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Department struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Positions []Position `json:"positions"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type System struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

type Role struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Permissions map[string]map[string]bool `json:"permissions"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// UnmarshalJSON treats a missing "active" key as active. Records written
// before the flag existed carry no such key, and those accounts were
// never disabled.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := alias{Active: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*u = User(aux)
	return nil
}

type Settings struct {
	GenerateCheckedOnly bool `json:"generate_checked_only"`
}

// CatalogDocument is the on-disk shape of the entity catalog file.
type CatalogDocument struct {
	Departments []Department `json:"departments"`
	Systems     []System     `json:"systems"`
	Categories  []Category   `json:"categories"`
	Roles       []Role       `json:"roles"`
	Users       []User       `json:"users"`
	Settings    Settings     `json:"settings"`
}

// MatrixDocument is the on-disk shape of the matrix file: position id in
// string form mapping to a sorted system id list.
type MatrixDocument map[string]IDList

// IDList unmarshals system id lists that may contain numbers, numeric
// strings, or a mix of both. Files written by older versions of the tool
// carried string ids alongside integers.
type IDList []int

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return err
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			out = append(out, n)
			continue
		}
		var n int
		if err := json.Unmarshal(item, &n); err != nil {
			return err
		}
		out = append(out, n)
	}
	*l = out
	return nil
}
