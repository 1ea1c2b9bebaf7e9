package extractor

// Допуск в пикселях при проверке попадания элемента во viewport
const viewportMargin = 100

// Максимальная длина текста элемента в снапшоте
const textLimit = 100

// clickableElementsScript — встраиваемый скрипт классификации.
// Обходит DOM в прямом порядке от document.body и возвращает массив
// описаний интерактивных элементов. Индексы назначаются счетчиком
// в порядке обхода, начиная с нуля на каждом проходе.
const clickableElementsScript = `
() => {
    function isVisible(element) {
        if (!element.getBoundingClientRect) return false;
        const rect = element.getBoundingClientRect();
        return !!(rect.top || rect.bottom || rect.width || rect.height) &&
               window.getComputedStyle(element).visibility !== 'hidden' &&
               window.getComputedStyle(element).display !== 'none' &&
               window.getComputedStyle(element).opacity !== '0';
    }

    function isInViewport(element) {
        const rect = element.getBoundingClientRect();
        return (
            rect.top >= -100 &&
            rect.left >= -100 &&
            rect.bottom <= (window.innerHeight + 100) &&
            rect.right <= (window.innerWidth + 100)
        );
    }

    function isInteractive(element) {
        const tagName = element.tagName.toLowerCase();

        const interactiveTags = ['a', 'button', 'input', 'select', 'textarea', 'details', 'summary'];
        if (interactiveTags.includes(tagName)) return true;

        const role = element.getAttribute('role');
        const interactiveRoles = ['button', 'link', 'checkbox', 'radio', 'tab', 'menuitem'];
        if (role && interactiveRoles.includes(role)) return true;

        if (element.onclick ||
            element.getAttribute('onclick') ||
            element.getAttribute('ng-click') ||
            element.getAttribute('@click')) return true;

        if (element.getAttribute('tabindex') && element.getAttribute('tabindex') !== '-1') return true;

        if (element.getAttribute('contenteditable') === 'true') return true;

        return false;
    }

    function getElementText(element) {
        const tagName = element.tagName.toLowerCase();
        if (tagName === 'input' || tagName === 'textarea') {
            return element.value || element.placeholder || '';
        }
        return element.innerText || element.textContent || '';
    }

    function getXPath(element) {
        if (!element) return '';

        if (element.id) {
            return '//*[@id="' + element.id + '"]';
        }

        const parts = [];
        while (element && element.nodeType === Node.ELEMENT_NODE) {
            let idx = 0;
            let sibling = element.previousSibling;
            while (sibling) {
                if (sibling.nodeType === Node.ELEMENT_NODE &&
                    sibling.tagName === element.tagName) {
                    idx++;
                }
                sibling = sibling.previousSibling;
            }

            const tagName = element.tagName.toLowerCase();
            const pathIndex = idx ? '[' + (idx + 1) + ']' : '';
            parts.unshift(tagName + pathIndex);

            element = element.parentNode;
        }

        return '/' + parts.join('/');
    }

    const clickableElements = [];
    let index = 0;

    function processElement(element) {
        if (!element || !isVisible(element)) return;

        if (isInteractive(element)) {
            const tagName = element.tagName.toLowerCase();
            const text = getElementText(element).trim();
            const rect = element.getBoundingClientRect();

            const attributes = {};
            for (const attr of element.attributes) {
                attributes[attr.name] = attr.value;
            }

            clickableElements.push({
                index: index++,
                tagName,
                text: text.substring(0, 100),
                attributes,
                xpath: getXPath(element),
                isVisible: true,
                isInViewport: isInViewport(element),
                boundingBox: {
                    x: rect.x,
                    y: rect.y,
                    width: rect.width,
                    height: rect.height,
                    top: rect.top,
                    right: rect.right,
                    bottom: rect.bottom,
                    left: rect.left
                }
            });
        }

        for (const child of element.children) {
            processElement(child);
        }
    }

    processElement(document.body);

    return clickableElements;
}
`
