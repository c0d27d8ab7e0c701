package dal

import "TagHub.com/cmd/video/dal/db"

func Init() {
	db.Init()
}
