// Package student содержит доменную модель студента.
//
// Студент обладает всеми полями и поведением человека (person.Fields
// встраивается в Student) и добавляет год поступления и специальность.
//
// # Основные сущности
//
// Student - создаётся через NewStudent с полной валидацией:
//
//	s, err := NewStudent(Params{
//	    Person: person.Params{
//	        Name:       "Олег",
//	        Surname:    "Шевченко",
//	        Patronymic: "Іванович",
//	        BirthMonth: 9,
//	        BirthYear:  2003,
//	    },
//	    AdmissionYear: 2021,
//	    Specialty:     "Комп'ютерні науки",
//	})
//
// Builder - пошаговая сборка с ранней проверкой месяца и годов:
//
//	s, err := NewBuilder().
//	    SetName("Анна").
//	    SetSurname("Мельник").
//	    SetPatronymic("Петрівна").
//	    SetBirthMonth(12).
//	    SetBirthYear(2004).
//	    SetAdmissionYear(2022).
//	    SetSpecialty("Програмна інженерія").
//	    Build()
//
// # Инварианты
//
//   - год поступления не раньше года рождения (равенство допустимо);
//   - год поступления не позже текущего года;
//   - специальность не пустая.
//
// # Репозитории
//
// Repository - упорядоченная коллекция студентов с поиском по имени и
// специальности; реализация в infrastructure/persistence/memory.
package student
