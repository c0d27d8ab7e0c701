package dal

import "TagHub.com/cmd/interaction/dal/db"

func Init() {
	db.Init()
}
