package dal

import "TagHub.com/cmd/requirement/dal/db"

func Init() {
	db.Init()
}
