package ui

import "fmt"

// PrintInteractiveHelp выводит список команд интерактивного режима
func PrintInteractiveHelp() {
	fmt.Println(ColorBold + "=== Интерактивный режим ===" + ColorReset)
	fmt.Println(ColorYellow + IconList + " Доступные команды:" + ColorReset)
	fmt.Println("  " + ColorGreen + "h" + ColorReset + " <индекс> - Подсветить элемент")
	fmt.Println("  " + ColorGreen + "c" + ColorReset + " <индекс> - Кликнуть по элементу")
	fmt.Println("  " + ColorGreen + "s" + ColorReset + " <индекс> - Детали элемента")
	fmt.Println("  " + ColorGreen + "l" + ColorReset + "          - Список всех элементов")
	fmt.Println("  " + ColorGreen + "q" + ColorReset + "          - Выход из интерактивного режима")
	fmt.Println()
}
