// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Эти ошибки позволяют обработчикам различать причины отказа
// и молча пропускать события, не заслуживающие реакции.
package common

import "errors"

// Ошибки хранилища репутации
var (
	// ErrRecordNotFound — запись репутации не найдена
	ErrRecordNotFound = errors.New("запись репутации не найдена")
)

// Причины отказа в начислении репутации.
// Отказ — не сбой: бот просто ничего не отвечает и ничего не пишет в БД.
var (
	// ErrSelfThanks — попытка поблагодарить самого себя
	ErrSelfThanks = errors.New("нельзя повышать репутацию самому себе")
	// ErrBotTarget — ответ на сообщение самого бота
	ErrBotTarget = errors.New("боту репутация не начисляется")
	// ErrTargetLeft — адресат благодарности уже покинул чат
	ErrTargetLeft = errors.New("участник покинул чат")
)
