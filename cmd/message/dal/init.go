package dal

import "TagHub.com/cmd/message/dal/db"

func Init() {
	db.Init()
}
