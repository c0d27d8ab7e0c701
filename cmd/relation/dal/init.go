package dal

import "TagHub.com/cmd/relation/dal/db"

func Init() {
	db.Init()
}
