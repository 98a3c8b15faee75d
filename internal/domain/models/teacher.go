// internal/domain/models/teacher.go
package models

import "time"

// Teacher is an authorized management account. The _id is the username
// itself; a record's existence is what authorizes management calls, so no
// credential fields live here.
type Teacher struct {
	Username    string    `bson:"_id"`
	DisplayName string    `bson:"display_name"`
	CreatedAt   time.Time `bson:"created_at"`
}
